package orchestrator

type BuildPlanStep struct {
	orderer DeployOrderer
	logger  Logger
}

func NewBuildPlanStep(orderer DeployOrderer, logger Logger) Step {
	return &BuildPlanStep{
		orderer: orderer,
		logger:  logger,
	}
}

func (s *BuildPlanStep) Run(session *Session) error {
	plan, err := BuildPlan(session.Environments(), s.orderer)
	if err != nil {
		session.Report().MarkPendingSkipped("the deploy plan could not be built")
		return err
	}

	session.SetCurrentPlan(plan)
	s.logger.Info("ldp", "Planned %d stages for trigger '%s'", len(plan.Stages), session.Trigger())
	return nil
}
