package cronjobs

import (
	"sync"
	"time"
)

// AlertKeys are the urgent alert messages cycled on the dashboard.
var AlertKeys = []string{"alert_details_1", "alert_details_2", "alert_details_3"}

// Rotator cycles through a fixed list of alert keys while mounted.
// Every mount starts again from the first key.
type Rotator struct {
	mu     sync.Mutex
	keys   []string
	period time.Duration
	index  int
	gen    int
	stop   func()
}

func NewRotator(keys []string, period time.Duration) *Rotator {
	return &Rotator{keys: keys, period: period}
}

func (r *Rotator) Mount(runner Runner) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopLocked()
	r.index = 0
	r.gen++
	gen := r.gen
	r.stop = runner.Every(r.period, "alert rotation", func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if gen == r.gen && r.stop != nil {
			r.advanceLocked()
		}
	})
}

func (r *Rotator) Unmount() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
}

func (r *Rotator) stopLocked() {
	if r.stop != nil {
		r.stop()
		r.stop = nil
	}
	r.gen++
}

// Advance moves to the next key, wrapping after the last.
func (r *Rotator) Advance() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.advanceLocked()
}

func (r *Rotator) advanceLocked() {
	if len(r.keys) == 0 {
		return
	}
	r.index = (r.index + 1) % len(r.keys)
}

func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

func (r *Rotator) CurrentKey() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.keys) == 0 {
		return ""
	}
	return r.keys[r.index]
}
