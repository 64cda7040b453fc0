package orchestrator

import "github.com/pkg/errors"

// Trigger records what started a run. Every trigger produces the same
// plan; it only appears in logs and the run report.
type Trigger string

const (
	TriggerPush        Trigger = "push"
	TriggerPullRequest Trigger = "pull-request"
	TriggerManual      Trigger = "manual"
)

func ParseTrigger(value string) (Trigger, error) {
	switch Trigger(value) {
	case TriggerPush, TriggerPullRequest, TriggerManual:
		return Trigger(value), nil
	default:
		return "", errors.Errorf("unsupported trigger '%s', valid triggers: push, pull-request, manual", value)
	}
}
