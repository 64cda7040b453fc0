package orchestrator

import (
	"time"

	"github.com/visual-utils/lambda-deploy-and-promote/credentials"
)

type Session struct {
	environments []Environment
	trigger      Trigger
	plan         *Plan
	report       *RunReport
	credentials  map[string]credentials.Credentials
}

func NewSession(environments []Environment, trigger Trigger, startedAt time.Time) *Session {
	return &Session{
		environments: environments,
		trigger:      trigger,
		report:       NewRunReport(environments, trigger, startedAt),
		credentials:  map[string]credentials.Credentials{},
	}
}

func (session *Session) Environments() []Environment {
	return session.environments
}

func (session *Session) Trigger() Trigger {
	return session.trigger
}

func (session *Session) CurrentPlan() *Plan {
	return session.plan
}

func (session *Session) SetCurrentPlan(plan *Plan) {
	session.plan = plan
}

func (session *Session) Report() *RunReport {
	return session.report
}

func (session *Session) SetCredentials(environmentName string, creds credentials.Credentials) {
	session.credentials[environmentName] = creds
}

func (session *Session) Credentials(environmentName string) credentials.Credentials {
	return session.credentials[environmentName]
}
