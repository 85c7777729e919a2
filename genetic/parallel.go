// Package genetic — bounded worker pool for per-slot work.
//
// Seeding and offspring construction are embarrassingly parallel: every
// slot's work depends only on the read-only parent Population and on the
// slot's own RNG stream. The pool below fans slot indices out to Workers
// goroutines; with per-slot RNG streams the produced Population is
// byte-identical to the sequential one.
package genetic

import "sync"

// forEachSlot runs fn(slot) for every slot in [first, last).
//
// Workers == 1 keeps everything on the calling goroutine. With more
// workers, slots are distributed over a channel; fn must write only to
// its own slot. The first error wins and is returned after all workers
// drain; a failed generation is discarded wholesale by the caller.
//
// Complexity: O(last−first) scheduling overhead.
func (e *Evolver) forEachSlot(first, last int, fn func(slot int) error) error {
	if e.opts.Workers <= 1 {
		var slot int
		for slot = first; slot < last; slot++ {
			if err := fn(slot); err != nil {
				return err
			}
		}

		return nil
	}

	var (
		slots    = make(chan int, last-first)
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)

	var slot int
	for slot = first; slot < last; slot++ {
		slots <- slot
	}
	close(slots)

	var w int
	for w = 0; w < e.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range slots {
				if err := fn(s); err != nil {
					once.Do(func() { firstErr = err })
				}
			}
		}()
	}
	wg.Wait()

	return firstErr
}
