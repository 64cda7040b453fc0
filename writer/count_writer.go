package writer

import (
	"io"
	"sync"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate -o fakes/fake_writer.go io.Writer

// CountWriter tallies the bytes written through it. The packager uses
// the total to size upload progress reporting.
type CountWriter struct {
	Writer  io.Writer
	mutex   sync.RWMutex
	counter int
}

func NewCountWriter(w io.Writer) *CountWriter {
	return &CountWriter{Writer: w}
}

func (c *CountWriter) Write(b []byte) (int, error) {
	n, err := c.Writer.Write(b)
	if err != nil {
		return 0, err
	}

	c.mutex.Lock()
	c.counter += n
	c.mutex.Unlock()
	return n, nil
}

func (c *CountWriter) Count() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.counter
}
