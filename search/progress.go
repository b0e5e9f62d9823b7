package search

import "sync"

// Progress reports how many candidates of a run have been evaluated.
type Progress struct {
	Method Method
	Done   int
	Total  int
}

// Fraction returns Done/Total in [0, 1]; an empty run is complete.
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 1
	}
	return float64(p.Done) / float64(p.Total)
}

// ProgressFunc receives progress events. Calls are serialized, never
// concurrent, and Done is non-decreasing within a run.
type ProgressFunc func(Progress)

// progressSteps is the number of evenly spaced reports per run.
const progressSteps = 10

// tracker forwards progress to fn roughly every 1/progressSteps of total.
type tracker struct {
	mu     sync.Mutex
	fn     ProgressFunc
	method Method
	total  int
	done   int
	next   int
	step   int
}

func newTracker(fn ProgressFunc, method Method, total int) *tracker {
	step := total / progressSteps
	if step < 1 {
		step = 1
	}
	return &tracker{fn: fn, method: method, total: total, next: step, step: step}
}

func (t *tracker) add(n int) {
	if t.fn == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.done += n
	if t.done >= t.next && t.done < t.total {
		t.fn(Progress{Method: t.method, Done: t.done, Total: t.total})
		for t.next <= t.done {
			t.next += t.step
		}
	}
}

// finish emits the final event.
func (t *tracker) finish() {
	if t.fn == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fn(Progress{Method: t.method, Done: t.total, Total: t.total})
}
