package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/braav-io/setup/base/log"
)

// PanicError carries a panic recovered from a task.
type PanicError struct {
	Panic interface{}
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Panic)
}

type options struct {
	beforeStart    func()
	afterEnded     func()
	afterRecovered func(p interface{}, stack []byte)
}

type Option func(*options)

func WithBeforeStart(f func()) Option {
	return func(o *options) {
		o.beforeStart = f
	}
}

func WithAfterEnded(f func()) Option {
	return func(o *options) {
		o.afterEnded = f
	}
}

func WithAfterRecovered(f func(p interface{}, stack []byte)) Option {
	return func(o *options) {
		o.afterRecovered = f
	}
}

// RecoverableGo runs f on its own goroutine. The channel yields the error f returned,
// or a *PanicError if it panicked, and is closed afterwards.
func RecoverableGo(f func() error, fns ...Option) <-chan error {
	opts := options{}
	for _, fn := range fns {
		fn(&opts)
	}

	done := make(chan error, 1)
	go func() {
		defer close(done)
		defer func() {
			if opts.afterEnded != nil {
				opts.afterEnded()
			}
			if p := recover(); p != nil {
				stack := debug.Stack()
				log.Log().WithFields(log.Fields{
					"err":   p,
					"stack": string(stack),
				}).Error("panic")
				if opts.afterRecovered != nil {
					opts.afterRecovered(p, stack)
				}
				done <- &PanicError{Panic: p, Stack: stack}
			}
		}()

		if opts.beforeStart != nil {
			opts.beforeStart()
		}
		if err := f(); err != nil {
			done <- err
		}
	}()
	return done
}
