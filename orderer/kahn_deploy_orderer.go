package orderer

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/visual-utils/lambda-deploy-and-promote/orchestrator"
)

// KahnDeployOrderer stages environments so that every environment runs
// after all of its dependencies. Declaration order is preserved within
// a stage, so the same manifest always produces the same plan.
type KahnDeployOrderer struct {
}

func NewKahnDeployOrderer() KahnDeployOrderer {
	return KahnDeployOrderer{}
}

func (o KahnDeployOrderer) Order(environments []orchestrator.Environment) ([][]orchestrator.Environment, error) {
	if err := validateDependencies(environments); err != nil {
		return nil, err
	}

	placed := map[string]bool{}
	remaining := environments

	var stages [][]orchestrator.Environment
	for len(remaining) > 0 {
		var stage []orchestrator.Environment
		var deferred []orchestrator.Environment

		for _, environment := range remaining {
			if dependenciesPlaced(environment, placed) {
				stage = append(stage, environment)
			} else {
				deferred = append(deferred, environment)
			}
		}

		if len(stage) == 0 {
			return nil, errors.Errorf("dependency cycle involving environments: %s", strings.Join(namesOf(deferred), ", "))
		}

		for _, environment := range stage {
			placed[environment.Name] = true
		}

		stages = append(stages, stage)
		remaining = deferred
	}

	return stages, nil
}

func validateDependencies(environments []orchestrator.Environment) error {
	known := map[string]bool{}
	for _, environment := range environments {
		if known[environment.Name] {
			return errors.Errorf("environment '%s' is declared more than once", environment.Name)
		}
		known[environment.Name] = true
	}

	for _, environment := range environments {
		for _, dependency := range environment.DependsOn {
			if dependency == environment.Name {
				return errors.Errorf("environment '%s' depends on itself", environment.Name)
			}
			if !known[dependency] {
				return errors.Errorf("environment '%s' depends on unknown environment '%s'", environment.Name, dependency)
			}
		}
	}

	return nil
}

func dependenciesPlaced(environment orchestrator.Environment, placed map[string]bool) bool {
	for _, dependency := range environment.DependsOn {
		if !placed[dependency] {
			return false
		}
	}
	return true
}

func namesOf(environments []orchestrator.Environment) []string {
	var names []string
	for _, environment := range environments {
		names = append(names, environment.Name)
	}
	return names
}
