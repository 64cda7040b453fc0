package runner

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"

	"github.com/pkg/errors"
)

// LocalRunner runs commands as child processes, layering the given
// variables over the parent environment. A non-zero exit is reported
// through the exit code, not the error.
type LocalRunner struct {
	stdout io.Writer
	stderr io.Writer
	logger Logger
}

func NewLocalRunner(stdout, stderr io.Writer, logger Logger) LocalRunner {
	return LocalRunner{stdout: stdout, stderr: stderr, logger: logger}
}

func (r LocalRunner) Run(command string, args []string, env map[string]string, label string) (int, error) {
	r.logger.Debug("runner", "[%s] running %s with args %v", label, command, args)

	cmd := exec.Command(command, args...)
	cmd.Env = append(os.Environ(), formatEnv(env)...)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			r.logger.Debug("runner", "[%s] %s exited %d", label, command, exitErr.ExitCode())
			return exitErr.ExitCode(), nil
		}
		return -1, errors.Wrapf(err, "failed to run '%s'", command)
	}

	r.logger.Debug("runner", "[%s] %s exited 0", label, command)
	return 0, nil
}

func formatEnv(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	formatted := make([]string, 0, len(env))
	for _, key := range keys {
		formatted = append(formatted, fmt.Sprintf("%s=%s", key, env[key]))
	}
	return formatted
}
