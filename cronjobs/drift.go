package cronjobs

import (
	"math/rand"
	"sync"
	"time"

	"go-healthwatch/types"
)

var InitialMetrics = types.Metrics{
	ActiveOutbreaks: 3,
	CasesToday:      125,
	AtRiskWater:     18,
	AshaReports:     45,
}

const (
	outbreakChance = 0.02
	waterChance    = 0.05
	maxCaseStep    = 3
	maxReportStep  = 3
)

// DriftSimulator nudges the dashboard counters upward while mounted so the
// page looks live. Counters never decrease; a new mount resets them.
type DriftSimulator struct {
	mu      sync.Mutex
	period  time.Duration
	rnd     *rand.Rand
	metrics types.Metrics
	gen     int
	stop    func()
}

// NewDriftSimulator uses rnd for every draw, or a time-seeded source if nil.
func NewDriftSimulator(period time.Duration, rnd *rand.Rand) *DriftSimulator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &DriftSimulator{period: period, rnd: rnd, metrics: InitialMetrics}
}

func (d *DriftSimulator) Mount(runner Runner) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.metrics = InitialMetrics
	d.gen++
	gen := d.gen
	d.stop = runner.Every(d.period, "metric drift", func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if gen == d.gen && d.stop != nil {
			d.stepLocked()
		}
	})
}

func (d *DriftSimulator) Unmount() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

func (d *DriftSimulator) stopLocked() {
	if d.stop != nil {
		d.stop()
		d.stop = nil
	}
	d.gen++
}

func (d *DriftSimulator) stepLocked() {
	if d.rnd.Float64() < outbreakChance {
		d.metrics.ActiveOutbreaks++
	}
	d.metrics.CasesToday += d.rnd.Intn(maxCaseStep + 1)
	d.metrics.AshaReports += d.rnd.Intn(maxReportStep + 1)
	if d.rnd.Float64() < waterChance {
		d.metrics.AtRiskWater++
	}
}

func (d *DriftSimulator) Metrics() types.Metrics {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.metrics
}
