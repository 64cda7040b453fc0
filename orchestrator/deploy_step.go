package orchestrator

import (
	"github.com/visual-utils/lambda-deploy-and-promote/executor"
	"github.com/visual-utils/lambda-deploy-and-promote/runner"
)

type DeployStep struct {
	command       DeployCommand
	processRunner runner.Runner
	executor      executor.Executor
	logger        Logger
}

func NewDeployStep(command DeployCommand, processRunner runner.Runner, stageExecutor executor.Executor, logger Logger) Step {
	return &DeployStep{
		command:       command,
		processRunner: processRunner,
		executor:      stageExecutor,
		logger:        logger,
	}
}

func (s *DeployStep) Run(session *Session) error {
	var stages [][]executor.Executable

	for _, stage := range session.CurrentPlan().Stages {
		var executables []executor.Executable
		for _, environment := range stage {
			executables = append(executables, NewEnvironmentDeployExecutable(
				environment,
				s.command,
				session.Credentials(environment.Name),
				session.Report().ResultFor(environment.Name),
				s.processRunner,
				s.logger,
			))
		}
		stages = append(stages, executables)
	}

	errs := s.executor.Run(stages)

	session.Report().MarkPendingSkipped("not attempted, an earlier environment failed")

	return ConvertErrors(errs)
}
