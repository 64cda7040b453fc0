package orchestrator

import (
	"github.com/visual-utils/lambda-deploy-and-promote/credentials"
)

// Environment is a deployment target. DependsOn lists environments that
// must have deployed successfully before this one is attempted.
type Environment struct {
	Name      string
	Region    string
	DependsOn []string
	Scope     credentials.Scope
}

type DeployCommand struct {
	Path            string
	Args            []string
	EnvironmentFlag string
}

func (c DeployCommand) InvocationArgs(environmentName string) []string {
	args := append([]string{}, c.Args...)
	return append(args, c.EnvironmentFlag, environmentName)
}
