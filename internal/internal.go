package internal

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Grain returns a default sub-range grain size for a range of the given
// size, dividing the work into roughly two batches per CPU. Grain panics if
// size is negative.
func Grain(size int) int {
	if size < 0 {
		panic(fmt.Sprintf("invalid range size: %v", size))
	}
	batches := 2 * runtime.NumCPU()
	if batches > size {
		batches = size
	}
	if batches < 1 {
		return 1
	}
	if grain := size / batches; grain > 1 {
		return grain
	}
	return 1
}

// WrapPanic adds stack trace information to a recovered panic.
func WrapPanic(p any) any {
	if p != nil {
		if err, isError := p.(error); isError {
			return fmt.Errorf("%w\n%s\nrethrown at", err, debug.Stack())
		}
		return fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
	}
	return nil
}
