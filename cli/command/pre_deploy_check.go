package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/visual-utils/lambda-deploy-and-promote/config"
	"github.com/visual-utils/lambda-deploy-and-promote/factory"
)

type PreDeployCheckCommand struct {
}

func NewPreDeployCheckCommand() PreDeployCheckCommand {
	return PreDeployCheckCommand{}
}

func (d PreDeployCheckCommand) Cli() cli.Command {
	return cli.Command{
		Name:    "pre-deploy-check",
		Aliases: []string{"c"},
		Usage:   "Check the function can be deployed",
		Action:  d.Action,
		Flags: []cli.Flag{
			cli.BoolFlag{
				Name:  "verify-identity",
				Usage: "Exercise each credential scope against STS",
			},
		},
	}
}

func (d PreDeployCheckCommand) Action(c *cli.Context) error {
	cfg, err := config.Read(c.GlobalString("config"))
	if err != nil {
		return redCliError(err)
	}

	succeeded := true
	for _, checkRunner := range factory.BuildCheckRunners(cfg, c.Bool("verify-identity"), os.Stdout) {
		if !checkRunner.Run() {
			succeeded = false
		}
	}

	if !succeeded {
		fmt.Printf("Function '%s' cannot be deployed.\n", cfg.Name)
		return cli.NewExitError("", 1)
	}

	fmt.Printf("Function '%s' can be deployed.\n", cfg.Name)
	return cli.NewExitError("", 0)
}
