package orchestrator_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/visual-utils/lambda-deploy-and-promote/credentials"
	"github.com/visual-utils/lambda-deploy-and-promote/orchestrator"
	"github.com/visual-utils/lambda-deploy-and-promote/orchestrator/fakes"
	runnerfakes "github.com/visual-utils/lambda-deploy-and-promote/runner/fakes"
)

var _ = Describe("EnvironmentDeployExecutable", func() {
	var (
		environment   orchestrator.Environment
		command       orchestrator.DeployCommand
		creds         credentials.Credentials
		result        *orchestrator.EnvironmentResult
		processRunner *runnerfakes.FakeRunner

		executable orchestrator.EnvironmentDeployExecutable
	)

	BeforeEach(func() {
		environment = orchestrator.Environment{Name: "dev", Region: "eu-west-1"}
		command = orchestrator.DeployCommand{
			Path:            "scripts/create_lambda_package.sh",
			Args:            []string{"--verbose"},
			EnvironmentFlag: "--env",
		}
		creds = credentials.Credentials{AccessKeyID: "AKIADEV", SecretAccessKey: "devsecret"}
		result = &orchestrator.EnvironmentResult{Environment: environment, Outcome: orchestrator.OutcomePending}
		processRunner = new(runnerfakes.FakeRunner)

		executable = orchestrator.NewEnvironmentDeployExecutable(
			environment, command, creds, result, processRunner, new(fakes.FakeLogger),
		)
	})

	It("appends the environment flag after the configured args", func() {
		Expect(executable.Execute()).To(Succeed())

		path, args, env, label := processRunner.RunArgsForCall(0)
		Expect(path).To(Equal("scripts/create_lambda_package.sh"))
		Expect(args).To(Equal([]string{"--verbose", "--env", "dev"}))
		Expect(label).To(Equal("deploy/dev"))
		Expect(env["AWS_ACCESS_KEY_ID"]).To(Equal("AKIADEV"))
		Expect(env["AWS_SECRET_ACCESS_KEY"]).To(Equal("devsecret"))
		Expect(env["AWS_REGION"]).To(Equal("eu-west-1"))
		Expect(env["AWS_DEFAULT_REGION"]).To(Equal("eu-west-1"))
		Expect(result.Outcome).To(Equal(orchestrator.OutcomeSucceeded))
	})

	It("does not mutate the configured args between invocations", func() {
		Expect(executable.Execute()).To(Succeed())
		Expect(executable.Execute()).To(Succeed())

		_, firstArgs, _, _ := processRunner.RunArgsForCall(0)
		_, secondArgs, _, _ := processRunner.RunArgsForCall(1)
		Expect(firstArgs).To(Equal(secondArgs))
		Expect(command.Args).To(Equal([]string{"--verbose"}))
	})

	When("the command exits non-zero", func() {
		BeforeEach(func() {
			processRunner.RunReturns(2, nil)
		})

		It("returns a deploy error and marks the result failed", func() {
			err := executable.Execute()

			Expect(err).To(BeAssignableToTypeOf(orchestrator.DeployError{}))
			Expect(err).To(MatchError("deploy command exited 2 for environment 'dev'"))
			Expect(result.Outcome).To(Equal(orchestrator.OutcomeFailed))
			Expect(result.Message).To(Equal("deploy command exited 2 for environment 'dev'"))
		})
	})

	When("the command cannot be run at all", func() {
		BeforeEach(func() {
			processRunner.RunReturns(-1, errors.New("exec format error"))
		})

		It("returns a deploy error carrying the cause", func() {
			err := executable.Execute()

			Expect(err).To(BeAssignableToTypeOf(orchestrator.DeployError{}))
			Expect(err).To(MatchError("deploy to environment 'dev' failed: exec format error"))
			Expect(result.Outcome).To(Equal(orchestrator.OutcomeFailed))
		})
	})
})
