package orchestrator

type SummaryStep struct {
	logger Logger
}

func NewSummaryStep(logger Logger) Step {
	return &SummaryStep{
		logger: logger,
	}
}

func (s *SummaryStep) Run(session *Session) error {
	report := session.Report()

	for _, result := range report.Results() {
		switch result.Outcome {
		case OutcomeSucceeded:
			s.logger.Info("ldp", "Environment '%s' succeeded", result.Environment.Name)
		case OutcomeFailed:
			s.logger.Error("ldp", "Environment '%s' failed: %s", result.Environment.Name, result.Message)
		case OutcomeSkipped:
			s.logger.Warn("ldp", "Environment '%s' skipped: %s", result.Environment.Name, result.Message)
		default:
			s.logger.Warn("ldp", "Environment '%s' was never attempted", result.Environment.Name)
		}
	}

	if report.Succeeded() {
		s.logger.Info("ldp", "Deploy run for trigger '%s' succeeded in %v",
			report.Trigger, report.FinishedAt.Sub(report.StartedAt))
	} else {
		s.logger.Error("ldp", "Deploy run for trigger '%s' did not complete successfully", report.Trigger)
	}

	return nil
}
