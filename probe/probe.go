package probe

import (
	"fmt"
	"os"

	"github.com/visual-utils/lambda-deploy-and-promote/credentials"
	"github.com/visual-utils/lambda-deploy-and-promote/identity"
	"github.com/visual-utils/lambda-deploy-and-promote/orchestrator"
)

type Probe func() error

type NamedProbe struct {
	Name  string
	Probe Probe
}

type Set []NamedProbe

// NewCommandSet probes the configured deploy command without running it.
func NewCommandSet(command orchestrator.DeployCommand) Set {
	return Set{
		{
			Name:  "Deploy command exists",
			Probe: commandExists(command.Path),
		},
		{
			Name:  "Deploy command is executable",
			Probe: commandExecutable(command.Path),
		},
	}
}

// NewEnvironmentSet probes one environment's credential scope. With
// verifyIdentity the scope is exercised against STS as well.
func NewEnvironmentSet(
	environment orchestrator.Environment,
	roleARN string,
	resolver credentials.Resolver,
	verifier identity.Verifier,
	verifyIdentity bool,
) Set {
	set := Set{
		{
			Name:  "Credentials resolve",
			Probe: credentialsResolve(environment, resolver),
		},
	}

	if verifyIdentity {
		set = append(set, NamedProbe{
			Name:  "Caller identity verified",
			Probe: callerIdentity(environment, roleARN, resolver, verifier),
		})
	}

	return set
}

func commandExists(path string) Probe {
	return func() error {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("could not stat '%s': %s", path, err)
		}
		return nil
	}
}

func commandExecutable(path string) Probe {
	return func() error {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("could not stat '%s': %s", path, err)
		}
		if info.IsDir() || info.Mode()&0111 == 0 {
			return fmt.Errorf("'%s' is not an executable file", path)
		}
		return nil
	}
}

func credentialsResolve(environment orchestrator.Environment, resolver credentials.Resolver) Probe {
	return func() error {
		_, err := resolver.Resolve(environment.Scope)
		return err
	}
}

func callerIdentity(
	environment orchestrator.Environment,
	roleARN string,
	resolver credentials.Resolver,
	verifier identity.Verifier,
) Probe {
	return func() error {
		creds, err := resolver.Resolve(environment.Scope)
		if err != nil {
			return err
		}

		_, err = verifier.WhoAmI(creds, roleARN, environment.Region)
		return err
	}
}
