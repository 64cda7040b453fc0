package orchestrator

import (
	"fmt"

	"github.com/visual-utils/lambda-deploy-and-promote/credentials"
	"github.com/visual-utils/lambda-deploy-and-promote/runner"
)

type EnvironmentDeployExecutable struct {
	environment   Environment
	command       DeployCommand
	creds         credentials.Credentials
	result        *EnvironmentResult
	processRunner runner.Runner
	logger        Logger
}

func NewEnvironmentDeployExecutable(
	environment Environment,
	command DeployCommand,
	creds credentials.Credentials,
	result *EnvironmentResult,
	processRunner runner.Runner,
	logger Logger,
) EnvironmentDeployExecutable {
	return EnvironmentDeployExecutable{
		environment:   environment,
		command:       command,
		creds:         creds,
		result:        result,
		processRunner: processRunner,
		logger:        logger,
	}
}

func (e EnvironmentDeployExecutable) Execute() error {
	e.result.Outcome = OutcomeRunning
	e.logger.Info("ldp", "Deploying to environment '%s'...", e.environment.Name)

	exitCode, err := e.processRunner.Run(
		e.command.Path,
		e.command.InvocationArgs(e.environment.Name),
		e.invocationEnv(),
		fmt.Sprintf("deploy/%s", e.environment.Name),
	)
	if err != nil {
		return e.fail(fmt.Sprintf("deploy to environment '%s' failed: %s", e.environment.Name, err))
	}
	if exitCode != 0 {
		return e.fail(fmt.Sprintf("deploy command exited %d for environment '%s'", exitCode, e.environment.Name))
	}

	e.result.Outcome = OutcomeSucceeded
	e.logger.Info("ldp", "Finished deploying to environment '%s'", e.environment.Name)
	return nil
}

func (e EnvironmentDeployExecutable) fail(message string) error {
	e.result.Outcome = OutcomeFailed
	e.result.Message = message
	return NewDeployError(message)
}

func (e EnvironmentDeployExecutable) invocationEnv() map[string]string {
	return map[string]string{
		"AWS_ACCESS_KEY_ID":     e.creds.AccessKeyID,
		"AWS_SECRET_ACCESS_KEY": e.creds.SecretAccessKey,
		"AWS_REGION":            e.environment.Region,
		"AWS_DEFAULT_REGION":    e.environment.Region,
	}
}
