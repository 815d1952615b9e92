package cronjobs

import (
	"sync"
	"time"

	"go-healthwatch/types"
)

type DashboardOptions struct {
	// Idle unmounts the view when no visit arrives for this long. Zero keeps
	// it mounted until Unmount.
	Idle      time.Duration
	AfterFunc func(d time.Duration, f func()) Timer
}

// DashboardView ties the alert rotation and metric drift to the lifetime of
// the dashboard page. Visit mounts it on demand; an idle period unmounts it.
type DashboardView struct {
	Alerts  *Rotator
	Metrics *DriftSimulator

	mu      sync.Mutex
	runner  Runner
	opts    DashboardOptions
	mounted bool
	gen     int
	idle    Timer
}

func NewDashboardView(runner Runner, alerts *Rotator, metrics *DriftSimulator, opts DashboardOptions) *DashboardView {
	if opts.AfterFunc == nil {
		opts.AfterFunc = func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		}
	}
	return &DashboardView{Alerts: alerts, Metrics: metrics, runner: runner, opts: opts}
}

// Mount starts both schedulers from their initial state, even if the view
// was already mounted.
func (v *DashboardView) Mount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.mountLocked()
	v.armLocked()
}

func (v *DashboardView) mountLocked() {
	v.Alerts.Mount(v.runner)
	v.Metrics.Mount(v.runner)
	v.mounted = true
}

// Visit mounts the view if needed and restarts the idle countdown.
func (v *DashboardView) Visit() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.mounted {
		log.Debug("Mounting dashboard")
		v.mountLocked()
	}
	v.armLocked()
}

func (v *DashboardView) armLocked() {
	v.stopIdleLocked()
	if v.opts.Idle <= 0 {
		return
	}
	gen := v.gen
	v.idle = v.opts.AfterFunc(v.opts.Idle, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if gen != v.gen || !v.mounted {
			return
		}
		log.Debug("Dashboard idle, unmounting")
		v.unmountLocked()
	})
}

func (v *DashboardView) stopIdleLocked() {
	if v.idle != nil {
		v.idle.Stop()
		v.idle = nil
	}
	v.gen++
}

func (v *DashboardView) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.unmountLocked()
}

func (v *DashboardView) unmountLocked() {
	v.stopIdleLocked()
	v.Alerts.Unmount()
	v.Metrics.Unmount()
	v.mounted = false
}

func (v *DashboardView) Mounted() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.mounted
}

type DashboardSnapshot struct {
	Mounted    bool
	AlertKey   string
	AlertIndex int
	Metrics    types.Metrics
}

func (v *DashboardView) Snapshot() DashboardSnapshot {
	return DashboardSnapshot{
		Mounted:    v.Mounted(),
		AlertKey:   v.Alerts.CurrentKey(),
		AlertIndex: v.Alerts.Index(),
		Metrics:    v.Metrics.Metrics(),
	}
}
