package writer

import (
	"io"

	"github.com/visual-utils/lambda-deploy-and-promote/orchestrator"
)

// LogPercentageWriter logs progress as a percentage of totalSize,
// at most once per percentageIncrement.
type LogPercentageWriter struct {
	Writer              io.Writer
	bytesWritten        int
	logger              orchestrator.Logger
	totalSize           int
	tag                 string
	message             string
	lastLogPercentage   int
	percentageIncrement int
}

func NewLogPercentageWriter(writer io.Writer, logger orchestrator.Logger, totalSize int, tag, message string) *LogPercentageWriter {
	return &LogPercentageWriter{
		Writer:              writer,
		logger:              logger,
		totalSize:           totalSize,
		tag:                 tag,
		message:             message,
		percentageIncrement: 5,
	}
}

func (l *LogPercentageWriter) Write(b []byte) (int, error) {
	n, err := l.Writer.Write(b)
	if err != nil {
		return 0, err
	}

	l.bytesWritten += n
	percentageWrittenSoFar := (100 * l.bytesWritten) / l.totalSize

	if l.bytesWritten > l.totalSize {
		l.logger.Info(l.tag, l.message, 100)
	} else if percentageWrittenSoFar >= l.lastLogPercentage+l.percentageIncrement {
		l.lastLogPercentage = percentageWrittenSoFar
		l.logger.Info(l.tag, l.message, percentageWrittenSoFar)
	}

	return n, nil
}
