package main

import (
	"os"

	"github.com/mgutz/ansi"
	"github.com/urfave/cli"

	"github.com/visual-utils/lambda-deploy-and-promote/cli/flags"
	"github.com/visual-utils/lambda-deploy-and-promote/config"
	"github.com/visual-utils/lambda-deploy-and-promote/factory"
	"github.com/visual-utils/lambda-deploy-and-promote/orchestrator"
)

var version string

func main() {
	app := cli.NewApp()

	app.Version = version
	app.Name = "fnpack"
	app.HelpName = "fnpack"
	app.Usage = "Package the function for one environment and update its code"

	app.Flags = availableFlags()
	app.Before = validateFlags
	app.Action = create

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func create(c *cli.Context) error {
	cfg, err := config.Read(c.String("config"))
	if err != nil {
		return cli.NewExitError(ansi.Color(err.Error(), "red"), 1)
	}

	fnPackager, err := factory.BuildPackager(cfg, c.String("env"), c.Bool("keep-workspace"), c.Bool("debug"))
	if err != nil {
		return cli.NewExitError(ansi.Color(err.Error(), "red"), 1)
	}

	return processCreateError(fnPackager.Create())
}

func processCreateError(err orchestrator.Error) error {
	switch {
	case err.IsNil():
		return nil
	case err.IsCleanup():
		return cli.NewExitError(ansi.Color(err.Error(), "yellow"), orchestrator.BuildExitCode(err))
	default:
		return cli.NewExitError(ansi.Color(err.Error(), "red"), orchestrator.BuildExitCode(err))
	}
}

func validateFlags(c *cli.Context) error {
	return flags.Validate([]string{"env"}, c)
}

func availableFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "env, e",
			Value: "",
			Usage: "Environment to package for",
		},
		cli.StringFlag{
			Name:   "config, c",
			Value:  "deployment.yml",
			EnvVar: "LDP_CONFIG",
			Usage:  "Path to the deployment manifest",
		},
		cli.BoolFlag{
			Name:  "keep-workspace",
			Usage: "Leave the package workspace behind for inspection",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logs",
		},
	}
}
