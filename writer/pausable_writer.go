package writer

import (
	"bytes"
	"io"
	"sync"
)

// PausableWriter buffers writes while paused and replays them on
// resume. The interrupt handler pauses application logging while it
// prompts on the terminal.
type PausableWriter struct {
	out    io.Writer
	buffer bytes.Buffer
	paused bool
	mutex  sync.Mutex
}

func NewPausableWriter(out io.Writer) *PausableWriter {
	return &PausableWriter{out: out}
}

func (pw *PausableWriter) Write(p []byte) (int, error) {
	pw.mutex.Lock()
	defer pw.mutex.Unlock()

	if pw.paused {
		return pw.buffer.Write(p)
	}
	return pw.out.Write(p)
}

func (pw *PausableWriter) Pause() {
	pw.mutex.Lock()
	defer pw.mutex.Unlock()

	pw.paused = true
}

func (pw *PausableWriter) Resume() error {
	pw.mutex.Lock()
	defer pw.mutex.Unlock()

	pw.paused = false
	_, err := io.Copy(pw.out, &pw.buffer)
	pw.buffer.Reset()
	return err
}
