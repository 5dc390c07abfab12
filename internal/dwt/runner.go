package dwt

import "sync"

// Runner executes fn over the row range [0, rows) of one level, possibly
// split into bands. It returns once every band is done.
type Runner func(rows int, fn func(y0, y1 int))

func Sequential(rows int, fn func(y0, y1 int)) {
	fn(0, rows)
}

// Parallel splits rows into at most workers contiguous bands, one goroutine
// per band.
func Parallel(workers int) Runner {
	if workers <= 1 {
		return Sequential
	}
	return func(rows int, fn func(y0, y1 int)) {
		n := min(workers, rows)
		if n <= 1 {
			fn(0, rows)
			return
		}
		var wg sync.WaitGroup
		wg.Add(n)
		for w := range n {
			go func(y0, y1 int) {
				defer wg.Done()
				fn(y0, y1)
			}(rows*w/n, rows*(w+1)/n)
		}
		wg.Wait()
	}
}
