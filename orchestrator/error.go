package orchestrator

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

type customError struct {
	error
}

type CredentialError customError
type DeployError customError
type CleanupError customError

func NewCredentialError(errorMessage string) CredentialError {
	return CredentialError{errors.New(errorMessage)}
}

func NewDeployError(errorMessage string) DeployError {
	return DeployError{errors.New(errorMessage)}
}

func NewCleanupError(errorMessage string) CleanupError {
	return CleanupError{errors.New(errorMessage)}
}

func ConvertErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return Error(errs)
}

func NewError(errs ...error) Error {
	if len(errs) == 0 {
		return nil
	}
	return Error(errs)
}

type Error []error

func (err Error) Error() string {
	return err.PrettyError(false)
}

func (err Error) PrettyError(includeStacktrace bool) string {
	if err.IsNil() {
		return ""
	}
	var buffer = bytes.NewBufferString("")

	fmt.Fprintf(buffer, "%d error%s occurred:\n", len(err), err.getPostFix())
	for index, err := range err {
		fmt.Fprintf(buffer, "error %d:\n", index+1)
		if includeStacktrace {
			fmt.Fprintf(buffer, "%+v\n", err)
		} else {
			fmt.Fprintf(buffer, "%+v\n", err.Error())
		}
	}
	return buffer.String()
}

func (err Error) getPostFix() string {
	errorPostfix := ""
	if len(err) > 1 {
		errorPostfix = "s"
	}
	return errorPostfix
}

func (err Error) ContainsDeployFailure() bool {
	for _, e := range err {
		if _, ok := e.(DeployError); ok {
			return true
		}
	}

	return false
}

func (err Error) ContainsCredentialFailure() bool {
	for _, e := range err {
		if _, ok := e.(CredentialError); ok {
			return true
		}
	}

	return false
}

func (err Error) IsCleanup() bool {
	if len(err) == 1 {
		_, ok := err[0].(CleanupError)
		return ok
	}

	return false
}

func (err Error) IsFatal() bool {
	return !err.IsNil() && !err.IsCleanup()
}

func (err Error) IsNil() bool {
	return len(err) == 0
}

func BuildExitCode(errs Error) int {
	exitCode := 0

	for _, err := range errs {
		switch err.(type) {
		case CredentialError:
			exitCode = exitCode | 1<<2
		case CleanupError:
			exitCode = exitCode | 1<<4
		default:
			exitCode = exitCode | 1
		}
	}

	return exitCode
}

func ProcessError(errs Error) (int, string, string) {
	if errs.IsNil() {
		return 0, "", ""
	}

	return BuildExitCode(errs), errs.PrettyError(false), errs.PrettyError(true)
}
