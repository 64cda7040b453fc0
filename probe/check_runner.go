package probe

import (
	"fmt"
	"io"
)

type CheckRunner struct {
	Subject  string
	ProbeSet Set
	Writer   io.Writer
}

func (r *CheckRunner) Run() (succeeded bool) {
	succeeded = true

	fmt.Fprintf(r.Writer, "Checking %s ...\n", r.Subject)

	for _, namedProbe := range r.ProbeSet {
		fmt.Fprintf(r.Writer, " * %s ... ", namedProbe.Name)

		err := namedProbe.Probe()

		if err != nil {
			succeeded = false

			fmt.Fprintf(r.Writer, "No [reason: %s]\n", err.Error())
		} else {
			fmt.Fprint(r.Writer, "Yes\n")
		}
	}

	fmt.Fprintf(r.Writer, "\n")

	return
}
