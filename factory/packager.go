package factory

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/visual-utils/lambda-deploy-and-promote/config"
	"github.com/visual-utils/lambda-deploy-and-promote/credentials"
	"github.com/visual-utils/lambda-deploy-and-promote/functions"
	"github.com/visual-utils/lambda-deploy-and-promote/packager"
	"github.com/visual-utils/lambda-deploy-and-promote/runner"
	"github.com/visual-utils/lambda-deploy-and-promote/s3"
)

func BuildPackager(cfg config.Config, environmentName string, keepWorkspace, withDebug bool) (*packager.Packager, error) {
	environment, found := cfg.LookupEnvironment(environmentName)
	if !found {
		return nil, fmt.Errorf("unknown environment '%s', valid environments are: %s",
			environmentName, strings.Join(cfg.EnvironmentNames(), ", "))
	}
	if environment.Function == nil {
		return nil, fmt.Errorf("environment '%s' does not declare a function", environmentName)
	}

	creds, err := credentials.NewEnvResolver().Resolve(scopeFor(environment))
	if err != nil {
		return nil, err
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "could not determine working directory")
	}

	logger := BuildLogger(withDebug)
	roleARN := environment.Credentials.RoleARN
	endpoint := environment.Function.Endpoint

	return packager.NewPackager(
		cfg.Name,
		environment,
		creds,
		runner.NewLocalRunner(ApplicationLoggerStdout, ApplicationLoggerStderr, logger),
		s3.NewS3Client(creds, roleARN, environment.Region, endpoint),
		functions.NewLambdaClient(creds, roleARN, environment.Region, endpoint),
		logger,
		workingDir,
		keepWorkspace,
		time.Now,
	), nil
}
