package main

import (
	"fmt"
	"time"

	"github.com/sjc5/tictoc/pkg/stopwatch"
	"github.com/sjc5/tictoc/pkg/tictoc"
)

func work(d time.Duration) {
	time.Sleep(d)
}

func main() {
	// Shared default timer.
	tictoc.Tic()
	work(300 * time.Millisecond)
	tictoc.Toc()

	// Scoped block on a named timer.
	tictoc.NewNamed("As a scoped block").Do(func() {
		work(300 * time.Millisecond)
	})

	// Explicit named timer.
	timer1 := tictoc.NewNamed("As a verbose object")
	timer1.Tic()
	work(300 * time.Millisecond)
	timer1.Toc()

	// Unnamed timer returns the duration instead of reporting.
	timer2 := tictoc.New()
	timer2.Tic()
	work(300 * time.Millisecond)
	diff, _ := timer2.Toc()
	fmt.Println(diff)

	// Two timers interleaved.
	timer3 := tictoc.NewNamed("As another verbose object")
	timer1.Tic()
	timer3.Tic()
	work(300 * time.Millisecond)
	timer1.Toc()
	work(300 * time.Millisecond)
	timer3.Toc()

	// Decorator forms.
	longOperation := tictoc.TicToc(func() {
		work(300 * time.Millisecond)
	})
	longOperation()

	timer4 := tictoc.NewNamed("Using the decorator")
	anotherLongOperation := timer4.Func(func() {
		work(300 * time.Millisecond)
	})
	anotherLongOperation()

	// Chaining successive intervals on the default timer.
	tictoc.Tic()
	work(100 * time.Millisecond)
	tictoc.TocTic()
	work(100 * time.Millisecond)
	tictoc.TocTic()
	work(100 * time.Millisecond)
	tictoc.Toc()

	// Checkpoint stopwatch.
	sw := stopwatch.New()
	work(100 * time.Millisecond)
	sw.Checkpoint("load")
	work(200 * time.Millisecond)
	sw.Checkpoint("render")
	fmt.Println("total:", sw.Total())
}
