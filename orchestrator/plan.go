package orchestrator

import (
	"bytes"
	"fmt"
	"strings"
)

//counterfeiter:generate -o fakes/fake_deploy_orderer.go . DeployOrderer
type DeployOrderer interface {
	Order([]Environment) ([][]Environment, error)
}

// Plan is the ordered set of deploy stages. Environments in the same
// stage have no dependency on each other.
type Plan struct {
	Stages [][]Environment
}

func BuildPlan(environments []Environment, orderer DeployOrderer) (*Plan, error) {
	stages, err := orderer.Order(environments)
	if err != nil {
		return nil, err
	}

	return &Plan{Stages: stages}, nil
}

func (p *Plan) Describe() string {
	buffer := bytes.NewBufferString("")

	for index, stage := range p.Stages {
		var entries []string
		for _, environment := range stage {
			entry := fmt.Sprintf("%s [%s]", environment.Name, environment.Region)
			if len(environment.DependsOn) > 0 {
				entry = fmt.Sprintf("%s (after: %s)", entry, strings.Join(environment.DependsOn, ", "))
			}
			entries = append(entries, entry)
		}
		fmt.Fprintf(buffer, "Stage %d: %s\n", index+1, strings.Join(entries, ", "))
	}

	return buffer.String()
}
