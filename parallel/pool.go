package parallel

import (
	"runtime"
	"sync"
)

type (
	WorkerFunc func(func())
	WaitFunc   func(done bool)
	CancelFunc func()
)

// Workers is the worker count requested on the command line. One means run
// inline, anything below one means one worker per GOMAXPROCS.
type Workers int

type Pool struct {
	wg     sync.WaitGroup
	Do     WorkerFunc
	Wait   WaitFunc
	Cancel CancelFunc
}

func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		Do: func(f func()) {
			f()
		},
		Wait:   func(bool) {},
		Cancel: func() {},
	}

	if numWorkers > 1 {
		workChan := make(chan func(), numWorkers)

		for range numWorkers {
			pool.wg.Go(func() {
				for f := range workChan {
					f()
				}
			})
		}

		pool.Do = func(f func()) {
			workChan <- f
		}

		pool.Wait = func(done bool) {
			if done {
				pool.Cancel()
			}
			pool.wg.Wait()
		}
		pool.Cancel = sync.OnceFunc(func() { close(workChan) })
	}

	return pool
}

// Rows calls fn once for every row in [0, height). Rows are handed to the pool
// in bands so each job amortizes the channel send; fn must only touch state
// owned by its row.
func Rows(workers Workers, height int, fn func(y int)) {
	if workers == 1 {
		for y := range height {
			fn(y)
		}
		return
	}

	pool := Start(int(workers))
	band := max(1, height/(4*runtime.GOMAXPROCS(0)))
	for y0 := 0; y0 < height; y0 += band {
		y1 := min(y0+band, height)
		pool.Do(func() {
			for y := y0; y < y1; y++ {
				fn(y)
			}
		})
	}
	pool.Wait(true)
}
