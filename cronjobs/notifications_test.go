package cronjobs

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-healthwatch/types"
)

type recordingSink struct {
	mu      sync.Mutex
	entries []types.AlertEntry
	err     error
}

func (s *recordingSink) Publish(_ context.Context, entry types.AlertEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return s.err
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func newTestQueue(sink NotificationSink) (*NotificationQueue, *manualRunner, *fakeClock) {
	runner := &manualRunner{}
	clock := newFakeClock()
	q := NewNotificationQueue(runner, QueueOptions{
		Period:    15 * time.Second,
		Lifetime:  10 * time.Second,
		Clock:     clock.Now,
		AfterFunc: clock.AfterFunc,
		Rand:      rand.New(rand.NewSource(3)),
		Sink:      sink,
	})
	return q, runner, clock
}

func TestEnableCreatesImmediately(t *testing.T) {
	sink := &recordingSink{}
	q, runner, clock := newTestQueue(sink)
	defer q.Close()

	q.Enable()
	require.Len(t, q.Entries(), 1)
	assert.True(t, q.Enabled())
	q.publishing.Wait()
	assert.Equal(t, 1, sink.count())

	entry := q.Entries()[0]
	assert.Equal(t, clock.Now().UnixMilli(), entry.ID)
	assert.Equal(t, clock.Now().Add(10*time.Second), entry.ExpiresAt)
	assert.Contains(t, Templates, Template{entry.TitleKey, entry.MessageKey, entry.Link})

	q.Enable()
	assert.Len(t, q.Entries(), 1)
	assert.Equal(t, 1, runner.Active("notifications"))
}

func TestQueueIsBoundedMostRecentFirst(t *testing.T) {
	q, runner, clock := newTestQueue(&recordingSink{})
	defer q.Close()

	q.Enable()
	for i := 0; i < 12; i++ {
		clock.Advance(time.Millisecond)
		runner.Fire("notifications")
	}

	entries := q.Entries()
	require.Len(t, entries, MaxNotifications)
	for i := 1; i < len(entries); i++ {
		assert.Greater(t, entries[i-1].ID, entries[i].ID)
	}
	assert.Equal(t, clock.Now().UnixMilli(), entries[0].ID)
	// evicted entries must not keep their timers
	assert.Equal(t, MaxNotifications, clock.Pending())
}

func TestEntriesExpire(t *testing.T) {
	q, runner, clock := newTestQueue(&recordingSink{})
	defer q.Close()

	q.Enable()
	clock.Advance(5 * time.Second)
	runner.Fire("notifications")
	require.Len(t, q.Entries(), 2)

	clock.Advance(5 * time.Second)
	require.Len(t, q.Entries(), 1)

	clock.Advance(5 * time.Second)
	assert.Empty(t, q.Entries())
}

func TestDismiss(t *testing.T) {
	q, runner, clock := newTestQueue(&recordingSink{})
	defer q.Close()

	q.Enable()
	// same millisecond, same advisory id
	runner.Fire("notifications")
	clock.Advance(time.Second)
	runner.Fire("notifications")
	require.Len(t, q.Entries(), 3)

	assert.False(t, q.Dismiss(12345))
	assert.Len(t, q.Entries(), 3)

	dup := clock.Now().Add(-time.Second).UnixMilli()
	assert.True(t, q.Dismiss(dup))
	entries := q.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, clock.Now().UnixMilli(), entries[0].ID)
	assert.Equal(t, 1, clock.Pending())

	assert.False(t, q.Dismiss(dup))
}

func TestDisableKeepsVisibleEntries(t *testing.T) {
	sink := &recordingSink{}
	q, runner, clock := newTestQueue(sink)
	defer q.Close()

	q.Enable()
	q.Disable()
	assert.False(t, q.Enabled())
	assert.Equal(t, 0, runner.Active("notifications"))
	require.Len(t, q.Entries(), 1)

	runner.last("notifications").fn()
	assert.Len(t, q.Entries(), 1)

	clock.Advance(10 * time.Second)
	assert.Empty(t, q.Entries())

	q.Enable()
	assert.Len(t, q.Entries(), 1)
	q.publishing.Wait()
	assert.Equal(t, 2, sink.count())
}

func TestCloseStopsEverything(t *testing.T) {
	q, runner, clock := newTestQueue(&recordingSink{})

	q.Enable()
	runner.Fire("notifications")
	q.Close()

	assert.Empty(t, q.Entries())
	assert.Equal(t, 0, clock.Pending())
	assert.Equal(t, 0, runner.Active("notifications"))

	q.Enable()
	assert.Empty(t, q.Entries())
}

func TestSinkErrorsAreSwallowed(t *testing.T) {
	sink := &recordingSink{err: errors.New("broker down")}
	q, _, _ := newTestQueue(sink)
	defer q.Close()

	q.Enable()
	assert.Len(t, q.Entries(), 1)
	q.publishing.Wait()
	assert.Equal(t, 1, sink.count())
}

type blockingSink struct {
	release chan struct{}
	done    chan types.AlertEntry
}

func (s *blockingSink) Publish(ctx context.Context, entry types.AlertEntry) error {
	select {
	case <-s.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	s.done <- entry
	return nil
}

func TestEnableDoesNotWaitForSink(t *testing.T) {
	sink := &blockingSink{release: make(chan struct{}), done: make(chan types.AlertEntry, 1)}
	q, _, _ := newTestQueue(sink)

	enabled := make(chan struct{})
	go func() {
		q.Enable()
		close(enabled)
	}()

	select {
	case <-enabled:
	case <-time.After(time.Second):
		t.Fatal("Enable blocked on a slow sink")
	}
	require.Len(t, q.Entries(), 1)

	close(sink.release)
	q.Close()
	select {
	case entry := <-sink.done:
		assert.NotZero(t, entry.ID)
	default:
		t.Fatal("Close returned before the publish finished")
	}
}
