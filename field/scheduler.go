package field

// Scheduler runs a callback once before the next paint.
type Scheduler interface {
	RequestFrame(fn func())
}

// SchedulerFunc adapts a plain function to Scheduler.
type SchedulerFunc func(fn func())

func (f SchedulerFunc) RequestFrame(fn func()) { f(fn) }

// FrameQueue is a stepped Scheduler: callbacks wait until Flush.
// Hosts flush it once per displayed frame; tests flush it to advance ticks.
type FrameQueue struct {
	pending []func()
}

func (q *FrameQueue) RequestFrame(fn func()) {
	q.pending = append(q.pending, fn)
}

// Flush runs the callbacks queued before the call and returns how many ran.
// Callbacks they request wait for the next Flush.
func (q *FrameQueue) Flush() int {
	batch := q.pending
	q.pending = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Pending returns the number of queued callbacks.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Viewport reports the current drawing area in pixels.
type Viewport interface {
	Size() (width, height int)
}

// ViewportFunc adapts a plain function to Viewport.
type ViewportFunc func() (int, int)

func (f ViewportFunc) Size() (int, int) { return f() }

// Rand is the random source particles are sampled from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}
