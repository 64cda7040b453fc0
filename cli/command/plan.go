package command

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/visual-utils/lambda-deploy-and-promote/config"
	"github.com/visual-utils/lambda-deploy-and-promote/factory"
	"github.com/visual-utils/lambda-deploy-and-promote/orchestrator"
	"github.com/visual-utils/lambda-deploy-and-promote/orderer"
)

type PlanCommand struct {
}

func NewPlanCommand() PlanCommand {
	return PlanCommand{}
}

func (p PlanCommand) Cli() cli.Command {
	return cli.Command{
		Name:    "plan",
		Aliases: []string{"p"},
		Usage:   "Print the deploy order without deploying",
		Action:  p.Action,
		Flags: []cli.Flag{
			cli.StringSliceFlag{
				Name:  "ops-file",
				Usage: "Ops file to apply to the deployment manifest, can be given more than once",
			},
		},
	}
}

func (p PlanCommand) Action(c *cli.Context) error {
	cfg, err := config.ReadWithOps(c.GlobalString("config"), c.StringSlice("ops-file"))
	if err != nil {
		return redCliError(err)
	}

	plan, err := orchestrator.BuildPlan(factory.Environments(cfg), orderer.NewKahnDeployOrderer())
	if err != nil {
		return redCliError(err)
	}

	fmt.Print(plan.Describe())
	fmt.Println(planTriggerNotice)

	return cli.NewExitError("", 0)
}
