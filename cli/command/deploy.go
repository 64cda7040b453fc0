package command

import (
	"github.com/urfave/cli"

	"github.com/visual-utils/lambda-deploy-and-promote/config"
	"github.com/visual-utils/lambda-deploy-and-promote/factory"
	"github.com/visual-utils/lambda-deploy-and-promote/orchestrator"
)

type DeployCommand struct {
}

func NewDeployCommand() DeployCommand {
	return DeployCommand{}
}

func (d DeployCommand) Cli() cli.Command {
	return cli.Command{
		Name:    "deploy",
		Aliases: []string{"d"},
		Usage:   "Deploy the function to every environment in dependency order",
		Action:  d.Action,
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "trigger",
				Value: "manual",
				Usage: "What started this run: push, pull-request or manual",
			},
			cli.StringSliceFlag{
				Name:  "ops-file",
				Usage: "Ops file to apply to the deployment manifest, can be given more than once",
			},
		},
	}
}

func (d DeployCommand) Action(c *cli.Context) error {
	trapSigint()

	trigger, err := orchestrator.ParseTrigger(c.String("trigger"))
	if err != nil {
		return redCliError(err)
	}

	cfg, err := config.ReadWithOps(c.GlobalString("config"), c.StringSlice("ops-file"))
	if err != nil {
		return redCliError(err)
	}

	deployer := factory.BuildDeployer(cfg, c.GlobalBool("debug"))

	_, deployErr := deployer.Deploy(trigger)
	return processError(deployErr)
}
