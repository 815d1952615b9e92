package cronjobs

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "cron")

// Runner schedules fn every period until the returned stop func is called.
type Runner interface {
	Every(period time.Duration, name string, fn func()) (stop func())
}

// CronRunner runs every job on one shared cron scheduler. Periods below one
// second are rounded up to one second by the scheduler.
type CronRunner struct {
	cron *cron.Cron
}

func NewCronRunner() *CronRunner {
	logger := cronLogger{}
	c := cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	log.Info("Starting Cron Jobs")
	c.Start()
	return &CronRunner{cron: c}
}

func (r *CronRunner) Every(period time.Duration, name string, fn func()) func() {
	id := r.cron.Schedule(cron.Every(period), cron.FuncJob(fn))
	log.Debugf("CronJob: %s scheduled every %s (entry %d)", name, period, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			r.cron.Remove(id)
			log.Debugf("CronJob: %s stopped", name)
		})
	}
}

// Stop halts the scheduler. The returned context is done once running jobs
// have finished.
func (r *CronRunner) Stop() context.Context {
	log.Info("Stopping Cron Jobs")
	return r.cron.Stop()
}

type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	log.WithFields(fields(keysAndValues)).Debug(msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	log.WithFields(fields(keysAndValues)).WithError(err).Error(msg)
}

func fields(keysAndValues []interface{}) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if k, ok := keysAndValues[i].(string); ok {
			f[k] = keysAndValues[i+1]
		}
	}
	return f
}
