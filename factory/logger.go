package factory

import (
	"os"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"github.com/visual-utils/lambda-deploy-and-promote/writer"
)

// ApplicationLoggerStdout and ApplicationLoggerStderr wrap the process
// streams so the interrupt handler can pause output while it prompts.
var ApplicationLoggerStdout = writer.NewPausableWriter(os.Stdout)
var ApplicationLoggerStderr = writer.NewPausableWriter(os.Stderr)

func BuildLogger(debug bool) boshlog.Logger {
	if debug {
		return boshlog.NewWriterLogger(boshlog.LevelDebug, ApplicationLoggerStdout)
	}
	return boshlog.NewWriterLogger(boshlog.LevelInfo, ApplicationLoggerStdout)
}
