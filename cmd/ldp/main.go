package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/visual-utils/lambda-deploy-and-promote/cli/command"
)

var version string

func main() {
	app := cli.NewApp()

	app.Version = version
	app.Name = "Lambda Deploy and Promote"
	app.HelpName = "ldp"
	app.Usage = "Deploy a packaged function through its environments in order"

	app.Flags = availableFlags()
	app.Commands = []cli.Command{
		command.NewDeployCommand().Cli(),
		command.NewPlanCommand().Cli(),
		command.NewPreDeployCheckCommand().Cli(),
		{
			Name:  "version",
			Usage: "",
			Action: func(c *cli.Context) error {
				cli.ShowVersion(c)
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func availableFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:   "config, c",
			Value:  "deployment.yml",
			EnvVar: "LDP_CONFIG",
			Usage:  "Path to the deployment manifest",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logs",
		},
	}
}
