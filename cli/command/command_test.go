package command_test

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/urfave/cli"

	"github.com/visual-utils/lambda-deploy-and-promote/cli/command"
)

var _ = Describe("ldp commands", func() {
	var (
		tempDir    string
		workingDir string
		configPath string
		scriptPath string
		recordPath string
	)

	newContext := func(localFlags map[string]string) *cli.Context {
		set := flag.NewFlagSet("ldp", 0)
		set.String("config", configPath, "")
		set.Bool("debug", false, "")
		for name, value := range localFlags {
			set.String(name, value, "")
		}
		set.Var(&cli.StringSlice{}, "ops-file", "")

		return cli.NewContext(cli.NewApp(), set, nil)
	}

	writeScript := func(contents string) {
		Expect(os.WriteFile(scriptPath, []byte(contents), 0755)).To(Succeed())
	}

	writeConfig := func(contents string) {
		Expect(os.WriteFile(configPath, []byte(contents), 0644)).To(Succeed())
	}

	recordedLines := func() []string {
		contents, err := os.ReadFile(recordPath)
		if os.IsNotExist(err) {
			return nil
		}
		Expect(err).NotTo(HaveOccurred())
		return strings.Split(strings.TrimSpace(string(contents)), "\n")
	}

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "ldp-command-test")
		Expect(err).NotTo(HaveOccurred())

		configPath = filepath.Join(tempDir, "deployment.yml")
		scriptPath = filepath.Join(tempDir, "deploy.sh")
		recordPath = filepath.Join(tempDir, "record")

		writeConfig(fmt.Sprintf(`---
name: rgb-splitter
region: eu-west-1
deploy:
  command: %s
environments:
- name: dev
  function:
    name: rgb-splitting-function-dev
    bucket: lambda-artifacts-dev
- name: prod
  depends_on: [dev]
  function:
    name: rgb-splitting-function-prod
    bucket: lambda-artifacts-prod
`, scriptPath))

		writeScript(fmt.Sprintf("#!/usr/bin/env bash\necho \"$* ${AWS_ACCESS_KEY_ID}\" >> %s\nexit 0\n", recordPath))

		Expect(os.Setenv("DEV_AWS_ACCESS_KEY_ID", "AKIADEV")).To(Succeed())
		Expect(os.Setenv("DEV_AWS_SECRET_ACCESS_KEY", "devsecret")).To(Succeed())
		Expect(os.Setenv("PROD_AWS_ACCESS_KEY_ID", "AKIAPROD")).To(Succeed())
		Expect(os.Setenv("PROD_AWS_SECRET_ACCESS_KEY", "prodsecret")).To(Succeed())

		workingDir, err = os.Getwd()
		Expect(err).NotTo(HaveOccurred())
		Expect(os.Chdir(tempDir)).To(Succeed())
	})

	AfterEach(func() {
		Expect(os.Chdir(workingDir)).To(Succeed())
		Expect(os.RemoveAll(tempDir)).To(Succeed())

		for _, variable := range []string{
			"DEV_AWS_ACCESS_KEY_ID", "DEV_AWS_SECRET_ACCESS_KEY",
			"PROD_AWS_ACCESS_KEY_ID", "PROD_AWS_SECRET_ACCESS_KEY",
		} {
			Expect(os.Unsetenv(variable)).To(Succeed())
		}
	})

	Describe("deploy", func() {
		It("deploys dev before prod, each with its own credentials", func() {
			err := command.NewDeployCommand().Action(newContext(map[string]string{"trigger": "push"}))

			exitError, isExitError := err.(*cli.ExitError)
			Expect(isExitError).To(BeTrue())
			Expect(exitError.ExitCode()).To(Equal(0))

			Expect(recordedLines()).To(Equal([]string{
				"--env dev AKIADEV",
				"--env prod AKIAPROD",
			}))
		})

		When("the dev deploy fails", func() {
			It("never attempts prod and exits non-zero", func() {
				writeScript(fmt.Sprintf("#!/usr/bin/env bash\necho \"$*\" >> %s\nif [[ \"$*\" == *dev* ]]; then exit 1; fi\nexit 0\n", recordPath))

				err := command.NewDeployCommand().Action(newContext(map[string]string{"trigger": "push"}))

				exitError, isExitError := err.(*cli.ExitError)
				Expect(isExitError).To(BeTrue())
				Expect(exitError.ExitCode()).To(Equal(1))
				Expect(exitError.Error()).To(ContainSubstring("deploy command exited 1 for environment 'dev'"))

				Expect(recordedLines()).To(Equal([]string{"--env dev"}))
			})
		})

		When("the trigger is not recognised", func() {
			It("fails without deploying", func() {
				err := command.NewDeployCommand().Action(newContext(map[string]string{"trigger": "cron"}))

				Expect(err.Error()).To(ContainSubstring("unsupported trigger 'cron'"))
				Expect(recordedLines()).To(BeEmpty())
			})
		})

		When("the manifest cannot be read", func() {
			It("fails without deploying", func() {
				configPath = filepath.Join(tempDir, "missing.yml")

				err := command.NewDeployCommand().Action(newContext(map[string]string{"trigger": "manual"}))

				Expect(err.Error()).To(ContainSubstring("failed to read config"))
				Expect(recordedLines()).To(BeEmpty())
			})
		})
	})

	Describe("plan", func() {
		It("succeeds without running the deploy command", func() {
			err := command.NewPlanCommand().Action(newContext(nil))

			exitError, isExitError := err.(*cli.ExitError)
			Expect(isExitError).To(BeTrue())
			Expect(exitError.ExitCode()).To(Equal(0))
			Expect(recordedLines()).To(BeEmpty())
		})

		When("the dependencies cannot be ordered", func() {
			It("fails", func() {
				writeConfig(fmt.Sprintf(`---
name: rgb-splitter
region: eu-west-1
deploy:
  command: %s
environments:
- name: dev
  depends_on: [prod]
  function:
    name: rgb-splitting-function-dev
    bucket: lambda-artifacts-dev
- name: prod
  depends_on: [dev]
  function:
    name: rgb-splitting-function-prod
    bucket: lambda-artifacts-prod
`, scriptPath))

				err := command.NewPlanCommand().Action(newContext(nil))

				Expect(err.Error()).To(ContainSubstring("dependency cycle involving environments: dev, prod"))
			})
		})
	})
})
