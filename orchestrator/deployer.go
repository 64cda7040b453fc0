package orchestrator

import (
	"time"

	"github.com/visual-utils/lambda-deploy-and-promote/credentials"
	"github.com/visual-utils/lambda-deploy-and-promote/executor"
	"github.com/visual-utils/lambda-deploy-and-promote/runner"
)

func NewDeployer(
	environments []Environment,
	command DeployCommand,
	orderer DeployOrderer,
	stageExecutor executor.Executor,
	resolver credentials.Resolver,
	processRunner runner.Runner,
	logger Logger,
	nowFunc func() time.Time,
) *Deployer {
	buildPlan := NewBuildPlanStep(orderer, logger)
	resolveCredentials := NewResolveCredentialsStep(resolver, logger)
	deploy := NewDeployStep(command, processRunner, stageExecutor, logger)
	addFinishTime := NewAddFinishTimeStep(nowFunc)
	summary := NewSummaryStep(logger)

	workflow := NewWorkflow()
	workflow.StartWith(buildPlan).OnSuccess(resolveCredentials).OnFailure(addFinishTime)
	workflow.Add(resolveCredentials).OnSuccess(deploy).OnFailure(addFinishTime)
	workflow.Add(deploy).OnSuccessOrFailure(addFinishTime)
	workflow.Add(addFinishTime).OnSuccessOrFailure(summary)
	workflow.Add(summary)

	return &Deployer{
		workflow:     workflow,
		environments: environments,
		nowFunc:      nowFunc,
	}
}

type Deployer struct {
	workflow     *Workflow
	environments []Environment
	nowFunc      func() time.Time
}

// Deploy runs every environment in dependency order. The trigger does
// not change the plan; it is recorded for the report.
func (d *Deployer) Deploy(trigger Trigger) (*RunReport, Error) {
	session := NewSession(d.environments, trigger, d.nowFunc())

	errs := d.workflow.Run(session)

	return session.Report(), errs
}
