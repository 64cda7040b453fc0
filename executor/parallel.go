package executor

func NewParallelExecutor(maxInFlight int) ParallelExecutor {
	if maxInFlight < 1 {
		maxInFlight = 1
	}
	return ParallelExecutor{maxInFlight: maxInFlight}
}

type ParallelExecutor struct {
	maxInFlight int
}

func (p ParallelExecutor) Run(executablesList [][]Executable) []error {
	var errors []error
	for _, executables := range executablesList {
		guard := make(chan bool, p.maxInFlight)
		errs := make(chan error, len(executables))

		for _, executable := range executables {
			guard <- true
			go func(executable Executable) {
				errs <- executable.Execute()
				<-guard
			}(executable)
		}

		for range executables {
			if err := <-errs; err != nil {
				errors = append(errors, err)
			}
		}

		if len(errors) > 0 {
			break
		}
	}

	return errors
}
