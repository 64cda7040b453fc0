package packager

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/visual-utils/lambda-deploy-and-promote/config"
	"github.com/visual-utils/lambda-deploy-and-promote/credentials"
	"github.com/visual-utils/lambda-deploy-and-promote/functions"
	"github.com/visual-utils/lambda-deploy-and-promote/orchestrator"
	"github.com/visual-utils/lambda-deploy-and-promote/runner"
	"github.com/visual-utils/lambda-deploy-and-promote/s3"
	"github.com/visual-utils/lambda-deploy-and-promote/writer"
)

// Packager stages, archives, uploads and activates one function build
// for one environment.
type Packager struct {
	project         string
	environment     config.Environment
	creds           credentials.Credentials
	processRunner   runner.Runner
	store           s3.Client
	functionsClient functions.Client
	logger          orchestrator.Logger
	baseDir         string
	keepWorkspace   bool
	nowFunc         func() time.Time
}

func NewPackager(
	project string,
	environment config.Environment,
	creds credentials.Credentials,
	processRunner runner.Runner,
	store s3.Client,
	functionsClient functions.Client,
	logger orchestrator.Logger,
	baseDir string,
	keepWorkspace bool,
	nowFunc func() time.Time,
) *Packager {
	return &Packager{
		project:         project,
		environment:     environment,
		creds:           creds,
		processRunner:   processRunner,
		store:           store,
		functionsClient: functionsClient,
		logger:          logger,
		baseDir:         baseDir,
		keepWorkspace:   keepWorkspace,
		nowFunc:         nowFunc,
	}
}

// Create runs the packaging pipeline. The workspace is cleaned up
// whatever the outcome, unless keepWorkspace is set; a failed cleanup
// surfaces as a CleanupError alongside any pipeline failure.
func (p *Packager) Create() orchestrator.Error {
	function := p.environment.Function

	p.logger.Info("fnpack", "Packaging function '%s' for environment '%s'", function.Name, p.environment.Name)

	workspace, err := NewWorkspace(p.baseDir, p.environment.Name)
	if err != nil {
		return orchestrator.NewError(err)
	}

	errs := p.createInWorkspace(workspace)

	if p.keepWorkspace {
		p.logger.Info("fnpack", "Keeping workspace '%s'", workspace.Path())
		return errs
	}

	if err := workspace.Cleanup(); err != nil {
		errs = append(errs, orchestrator.NewCleanupError(err.Error()))
	}

	return errs
}

func (p *Packager) createInWorkspace(workspace *Workspace) orchestrator.Error {
	function := p.environment.Function

	if function.Build != nil {
		p.logger.Info("fnpack", "Running build command '%s'", function.Build.Command)

		exitCode, err := p.processRunner.Run(function.Build.Command, function.Build.Args, p.buildEnv(workspace), "build/"+p.environment.Name)
		if err != nil {
			return orchestrator.NewError(errors.Wrap(err, "build command failed to start"))
		}
		if exitCode != 0 {
			return orchestrator.NewError(fmt.Errorf("build command exited %d", exitCode))
		}
	}

	p.logger.Info("fnpack", "Staging %d source paths", len(function.SourcePaths))
	if err := workspace.Stage(function.SourcePaths); err != nil {
		return orchestrator.NewError(err)
	}

	artifactPath := workspace.ArtifactPath(function.Key)
	summary, err := ZipDirectory(workspace.StagingDir(), artifactPath)
	if err != nil {
		return orchestrator.NewError(err)
	}
	p.logger.Info("fnpack", "Created archive '%s' (%d bytes, sha256 %s)", artifactPath, summary.Size, summary.SHA256)

	if err := p.upload(artifactPath, summary); err != nil {
		return orchestrator.NewError(err)
	}

	p.logger.Info("fnpack", "Updating code for function '%s'", function.Name)
	result, err := p.functionsClient.UpdateCode(function.Name, function.Bucket, function.Key)
	if err != nil {
		return orchestrator.NewError(err)
	}

	if result.CodeSha256 != summary.SHA256Base64 {
		return orchestrator.NewError(fmt.Errorf(
			"code checksum mismatch after update: function '%s' reports %s, local archive is %s",
			function.Name, result.CodeSha256, summary.SHA256Base64))
	}

	p.logger.Info("fnpack", "Function '%s' now at version %s", function.Name, result.Version)

	metadata := Metadata{
		Project:     p.project,
		Function:    function.Name,
		Environment: p.environment.Name,
		Bucket:      function.Bucket,
		Key:         function.Key,
		SHA256:      summary.SHA256,
		Size:        summary.Size,
		CreatedAt:   p.nowFunc().UTC().Format(timestampFormat),
	}
	if err := SaveMetadata(workspace.MetadataPath(), metadata); err != nil {
		return orchestrator.NewError(err)
	}

	return nil
}

func (p *Packager) upload(artifactPath string, summary ArchiveSummary) error {
	function := p.environment.Function

	artifactFile, err := os.Open(artifactPath)
	if err != nil {
		return errors.Wrapf(err, "could not open archive '%s'", artifactPath)
	}
	defer artifactFile.Close()

	p.logger.Info("fnpack", "Uploading '%s' to bucket '%s'", function.Key, function.Bucket)

	progressWriter := writer.NewLogPercentageWriter(io.Discard, p.logger, summary.Size, "fnpack", "Uploaded %d%%")
	body := io.TeeReader(artifactFile, progressWriter)

	return p.store.Put(function.Bucket, function.Key, body, int64(summary.Size))
}

func (p *Packager) buildEnv(workspace *Workspace) map[string]string {
	return map[string]string{
		"FNPACK_STAGING_DIR":    workspace.StagingDir(),
		"AWS_ACCESS_KEY_ID":     p.creds.AccessKeyID,
		"AWS_SECRET_ACCESS_KEY": p.creds.SecretAccessKey,
		"AWS_REGION":            p.environment.Region,
		"AWS_DEFAULT_REGION":    p.environment.Region,
	}
}
