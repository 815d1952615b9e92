package cronjobs

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go-healthwatch/types"
)

// MaxNotifications bounds the queue; older entries fall off the end.
const MaxNotifications = 5

const publishTimeout = 5 * time.Second

type Template struct {
	TitleKey   string
	MessageKey string
	Link       string
}

var Templates = []Template{
	{"demo_notification_title_1", "demo_notification_message_1", "/community-reports"},
	{"demo_notification_title_2", "demo_notification_message_2", "/water-quality"},
	{"demo_notification_title_3", "demo_notification_message_3", "/disease-trends"},
	{"demo_notification_title_4", "demo_notification_message_4", "/dashboard"},
}

// Timer is the part of *time.Timer the queue needs.
type Timer interface {
	Stop() bool
}

type QueueOptions struct {
	Period   time.Duration
	Lifetime time.Duration

	Clock     func() time.Time
	AfterFunc func(d time.Duration, f func()) Timer
	Rand      *rand.Rand
	Sink      NotificationSink
}

type queued struct {
	entry types.AlertEntry
	seq   uint64
	timer Timer
}

// NotificationQueue synthesizes demo notifications while enabled. Each entry
// removes itself after its lifetime unless dismissed first. Entry IDs come
// from the clock and may repeat; expiry is tracked by a private sequence.
type NotificationQueue struct {
	mu      sync.Mutex
	runner  Runner
	opts    QueueOptions
	entries []*queued
	seq     uint64
	gen     int
	stop    func()
	closed  bool

	publishing sync.WaitGroup
}

func NewNotificationQueue(runner Runner, opts QueueOptions) *NotificationQueue {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.AfterFunc == nil {
		opts.AfterFunc = func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Sink == nil {
		opts.Sink = LogSink{}
	}
	return &NotificationQueue{runner: runner, opts: opts}
}

// Enable creates one entry right away and then one per period. Enabling an
// enabled queue does nothing.
func (q *NotificationQueue) Enable() {
	q.mu.Lock()
	if q.closed || q.stop != nil {
		q.mu.Unlock()
		return
	}
	q.gen++
	gen := q.gen
	q.stop = q.runner.Every(q.opts.Period, "notifications", func() { q.tick(gen) })
	entry := q.pushLocked()
	q.publishing.Add(1)
	q.mu.Unlock()

	log.Infof("Notifications enabled, every %s", q.opts.Period)
	go q.publish(entry)
}

// Disable stops periodic creation. Visible entries keep their expiry timers.
func (q *NotificationQueue) Disable() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.stopLocked()
}

func (q *NotificationQueue) stopLocked() {
	if q.stop != nil {
		q.stop()
		q.stop = nil
		log.Info("Notifications disabled")
	}
	q.gen++
}

func (q *NotificationQueue) Enabled() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.stop != nil
}

func (q *NotificationQueue) tick(gen int) {
	q.mu.Lock()
	if gen != q.gen || q.stop == nil {
		q.mu.Unlock()
		return
	}
	entry := q.pushLocked()
	q.publishing.Add(1)
	q.mu.Unlock()

	go q.publish(entry)
}

func (q *NotificationQueue) pushLocked() types.AlertEntry {
	now := q.opts.Clock()
	tmpl := Templates[q.opts.Rand.Intn(len(Templates))]

	q.seq++
	item := &queued{
		seq: q.seq,
		entry: types.AlertEntry{
			ID:         now.UnixMilli(),
			TitleKey:   tmpl.TitleKey,
			MessageKey: tmpl.MessageKey,
			Link:       tmpl.Link,
			CreatedAt:  now,
			ExpiresAt:  now.Add(q.opts.Lifetime),
		},
	}
	seq := item.seq
	item.timer = q.opts.AfterFunc(q.opts.Lifetime, func() { q.expire(seq) })

	q.entries = append([]*queued{item}, q.entries...)
	if len(q.entries) > MaxNotifications {
		for _, dropped := range q.entries[MaxNotifications:] {
			dropped.timer.Stop()
		}
		q.entries = q.entries[:MaxNotifications]
	}
	return item.entry
}

func (q *NotificationQueue) expire(seq uint64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.removeLocked(func(item *queued) bool { return item.seq == seq })
}

// Dismiss removes every entry carrying id and reports whether any did.
func (q *NotificationQueue) Dismiss(id int64) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.removeLocked(func(item *queued) bool { return item.entry.ID == id }) > 0
}

func (q *NotificationQueue) removeLocked(match func(*queued) bool) int {
	kept := q.entries[:0]
	removed := 0
	for _, item := range q.entries {
		if match(item) {
			item.timer.Stop()
			removed++
			continue
		}
		kept = append(kept, item)
	}
	for i := len(kept); i < len(q.entries); i++ {
		q.entries[i] = nil
	}
	q.entries = kept
	return removed
}

// Entries returns the visible entries, most recent first.
func (q *NotificationQueue) Entries() []types.AlertEntry {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]types.AlertEntry, len(q.entries))
	for i, item := range q.entries {
		out[i] = item.entry
	}
	return out
}

// Close stops creation and every pending expiry timer, then waits for
// in-flight publishes.
func (q *NotificationQueue) Close() {
	q.mu.Lock()
	q.stopLocked()
	for _, item := range q.entries {
		item.timer.Stop()
	}
	q.entries = nil
	q.closed = true
	q.mu.Unlock()

	q.publishing.Wait()
}

func (q *NotificationQueue) publish(entry types.AlertEntry) {
	defer q.publishing.Done()

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := q.opts.Sink.Publish(ctx, entry); err != nil {
		log.WithError(err).Warnf("Failed to publish notification %d", entry.ID)
	}
}
