package compiler

import "fmt"

// PreconditionError reports IR that breaks an emission precondition, such as
// a self call outside any function. Emission functions panic with it;
// Generator recovers it and aborts the run.
type PreconditionError struct {
	Op  string
	Msg string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

func violate(op, format string, args ...any) {
	panic(&PreconditionError{Op: op, Msg: fmt.Sprintf(format, args...)})
}

// abortOnViolation converts a PreconditionError panic into *err. Any other
// panic is re-raised.
func abortOnViolation(err *error) {
	r := recover()
	if r == nil {
		return
	}
	pe, ok := r.(*PreconditionError)
	if !ok {
		panic(r)
	}
	*err = pe
}
