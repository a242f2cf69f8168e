package tictoc

import "time"

// Func wraps fn so that every call runs between a Tic and a Toc on t.
// Useful mostly with a verbose timer, which reports each call's duration.
// A pairing bug (the timer already running when the wrapped function is
// called) panics, since the closure has no error channel.
func (t *Timer) Func(fn func()) func() {
	return func() {
		t.mustTic()
		defer t.mustToc()
		fn()
	}
}

// Wrap is like Timer.Func for functions that return a value.
func Wrap[T any](t *Timer, fn func() T) func() T {
	return func() T {
		t.mustTic()
		defer t.mustToc()
		return fn()
	}
}

// WrapErr is like Wrap for functions that also return an error.
func WrapErr[T any](t *Timer, fn func() (T, error)) func() (T, error) {
	return func() (T, error) {
		t.mustTic()
		defer t.mustToc()
		return fn()
	}
}

// Do runs fn between a Tic and a Toc, returning the elapsed duration.
// The Toc is deferred, so a panic inside fn still stops the timer before
// propagating and the timer is idle afterward.
func (t *Timer) Do(fn func()) (elapsed time.Duration, err error) {
	if err = t.Tic(); err != nil {
		return 0, err
	}
	defer func() {
		elapsed, err = t.Toc()
	}()
	fn()
	return
}

// Scope starts the timer and returns its stop function, for use as
// defer t.Scope()(). Panics on pairing misuse, like the wrappers.
func (t *Timer) Scope() func() {
	t.mustTic()
	return t.mustToc
}

func (t *Timer) mustTic() {
	if err := t.Tic(); err != nil {
		panic(err)
	}
}

func (t *Timer) mustToc() {
	if _, err := t.Toc(); err != nil {
		panic(err)
	}
}
