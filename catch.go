package xtry

import "errors"

// Ready-made handlers pairing a catch with a warn or error diagnostic.
// Optional then-bodies run after the log line, in order, and run even in
// builds where the alert path itself is compiled out.

// CatchWarn matches any raised error value (but not foreign panic values),
// logs it at warn severity, then runs the optional bodies.
func CatchWarn(then ...func(error)) Handler {
	return Handler{
		match: isRaisedError,
		run: func(err error) {
			Warnf("raised: %v", err)
			for _, fn := range then {
				fn(err)
			}
		},
	}
}

// CatchError is CatchWarn at error severity.
func CatchError(then ...func(error)) Handler {
	return Handler{
		match: isRaisedError,
		run: func(err error) {
			Errorf("raised: %v", err)
			for _, fn := range then {
				fn(err)
			}
		},
	}
}

// CatchAnyWarn matches everything an earlier handler did not take, logs at
// warn severity, then runs the optional bodies.
func CatchAnyWarn(then ...func(error)) Handler {
	return Any(func(err error) {
		Warnf("unhandled raise: %v", err)
		for _, fn := range then {
			fn(err)
		}
	})
}

// CatchAnyError is CatchAnyWarn at error severity.
func CatchAnyError(then ...func(error)) Handler {
	return Any(func(err error) {
		Errorf("unhandled raise: %v", err)
		for _, fn := range then {
			fn(err)
		}
	})
}

// isRaisedError distinguishes raised error values from foreign panics that
// were wrapped into *PanicError on the way in.
func isRaisedError(err error) bool {
	var pe *PanicError
	return err != nil && !errors.As(err, &pe)
}
