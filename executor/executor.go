package executor

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Executables are grouped into batches. Batches run in order and a
// failed batch gates every batch after it.
type Executor interface {
	Run([][]Executable) []error
}

//counterfeiter:generate -o fakes/fake_executable.go . Executable
type Executable interface {
	Execute() error
}
