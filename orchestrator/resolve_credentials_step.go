package orchestrator

import (
	"fmt"
	"strings"

	"github.com/visual-utils/lambda-deploy-and-promote/credentials"
)

// ResolveCredentialsStep resolves the credential scope of every
// environment before anything is invoked, so a run with an unresolvable
// environment aborts without a partial deploy attempt.
type ResolveCredentialsStep struct {
	resolver credentials.Resolver
	logger   Logger
}

func NewResolveCredentialsStep(resolver credentials.Resolver, logger Logger) Step {
	return &ResolveCredentialsStep{
		resolver: resolver,
		logger:   logger,
	}
}

func (s *ResolveCredentialsStep) Run(session *Session) error {
	var failures []string

	for _, environment := range session.Environments() {
		creds, err := s.resolver.Resolve(environment.Scope)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %s", environment.Name, err))
			continue
		}
		session.SetCredentials(environment.Name, creds)
	}

	if len(failures) > 0 {
		session.Report().MarkPendingSkipped("credentials could not be resolved for every environment")
		return NewCredentialError(fmt.Sprintf("failed to resolve credentials: %s", strings.Join(failures, "; ")))
	}

	s.logger.Info("ldp", "Resolved credentials for %d environments", len(session.Environments()))
	return nil
}
