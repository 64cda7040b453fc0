package factory

import (
	"fmt"
	"io"

	"github.com/visual-utils/lambda-deploy-and-promote/config"
	"github.com/visual-utils/lambda-deploy-and-promote/credentials"
	"github.com/visual-utils/lambda-deploy-and-promote/identity"
	"github.com/visual-utils/lambda-deploy-and-promote/probe"
)

// BuildCheckRunners assembles the pre-deploy checks: one runner for the
// deploy command and one per environment for its credential scope.
func BuildCheckRunners(cfg config.Config, verifyIdentity bool, out io.Writer) []probe.CheckRunner {
	resolver := credentials.NewEnvResolver()
	verifier := identity.NewSTSVerifier()

	runners := []probe.CheckRunner{
		{
			Subject:  fmt.Sprintf("deploy command %s", cfg.Deploy.Command),
			ProbeSet: probe.NewCommandSet(DeployCommand(cfg)),
			Writer:   out,
		},
	}

	for _, environment := range cfg.Environments {
		runners = append(runners, probe.CheckRunner{
			Subject: fmt.Sprintf("environment %s (%s)", environment.Name, environment.Region),
			ProbeSet: probe.NewEnvironmentSet(
				environmentFor(environment),
				environment.Credentials.RoleARN,
				resolver,
				verifier,
				verifyIdentity,
			),
			Writer: out,
		})
	}

	return runners
}
