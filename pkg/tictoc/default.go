package tictoc

import "time"

// std is the shared process-wide timer behind the package-level functions.
// It is verbose, lives for the process, and needs no teardown.
var std = NewNamed("tictoc")

// Default returns the shared timer used by Tic, Toc, TocTic, and TicToc.
func Default() *Timer {
	return std
}

// Tic starts the shared timer.
func Tic() error {
	return std.Tic()
}

// Toc stops the shared timer and reports the elapsed interval.
func Toc() (time.Duration, error) {
	return std.Toc()
}

// TocTic restarts the shared timer, reporting the interval since the last
// Tic or TocTic. Chains of TocTic calls time successive sections without
// separate timer objects.
func TocTic() (time.Duration, error) {
	return std.TocTic()
}

// TicToc wraps fn so each call is timed by the shared timer.
func TicToc(fn func()) func() {
	return std.Func(fn)
}
