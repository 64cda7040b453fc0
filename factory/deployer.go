package factory

import (
	"time"

	"github.com/visual-utils/lambda-deploy-and-promote/config"
	"github.com/visual-utils/lambda-deploy-and-promote/credentials"
	"github.com/visual-utils/lambda-deploy-and-promote/executor"
	"github.com/visual-utils/lambda-deploy-and-promote/orchestrator"
	"github.com/visual-utils/lambda-deploy-and-promote/orderer"
	"github.com/visual-utils/lambda-deploy-and-promote/runner"
)

func BuildDeployer(cfg config.Config, withDebug bool) *orchestrator.Deployer {
	logger := BuildLogger(withDebug)

	return orchestrator.NewDeployer(
		Environments(cfg),
		DeployCommand(cfg),
		orderer.NewKahnDeployOrderer(),
		buildStageExecutor(cfg.Execution),
		credentials.NewEnvResolver(),
		runner.NewLocalRunner(ApplicationLoggerStdout, ApplicationLoggerStderr, logger),
		logger,
		time.Now,
	)
}

// Environments maps the manifest's environments onto deploy targets.
// Only the credential variable names cross over; the values are
// resolved at deploy time.
func Environments(cfg config.Config) []orchestrator.Environment {
	var environments []orchestrator.Environment
	for _, environment := range cfg.Environments {
		environments = append(environments, environmentFor(environment))
	}
	return environments
}

func DeployCommand(cfg config.Config) orchestrator.DeployCommand {
	return orchestrator.DeployCommand{
		Path:            cfg.Deploy.Command,
		Args:            cfg.Deploy.Args,
		EnvironmentFlag: cfg.Deploy.EnvironmentFlag,
	}
}

func environmentFor(environment config.Environment) orchestrator.Environment {
	return orchestrator.Environment{
		Name:      environment.Name,
		Region:    environment.Region,
		DependsOn: environment.DependsOn,
		Scope:     scopeFor(environment),
	}
}

func scopeFor(environment config.Environment) credentials.Scope {
	return credentials.Scope{
		AccessKeyIDVar:     environment.Credentials.AccessKeyIDFrom,
		SecretAccessKeyVar: environment.Credentials.SecretAccessKeyFrom,
	}
}

func buildStageExecutor(execution config.Execution) executor.Executor {
	if execution.Strategy == config.StrategyParallel {
		return executor.NewParallelExecutor(execution.MaxInFlight)
	}
	return executor.NewSerialExecutor()
}
