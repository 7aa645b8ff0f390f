package main

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestRegistry(t *testing.T, relay Relay, ttl time.Duration) (*Registry, *ContactMetrics, *testClock) {
	t.Helper()
	metrics := NewContactMetrics(prometheus.NewRegistry())
	sched := &fakeScheduler{}
	reg := NewRegistry(relay, ttl, newLoggerTo(io.Discard, "error"), metrics, WithScheduler(sched.Schedule))
	clock := newTestClock()
	reg.now = clock.Now
	return reg, metrics, clock
}

func TestRegistryMountCreatesIndependentInstances(t *testing.T) {
	reg, metrics, _ := newTestRegistry(t, okRelay(), time.Hour)

	id1, c1 := reg.Mount()
	id2, c2 := reg.Mount()

	assert.NotEqual(t, id1, id2)
	assert.Len(t, id1, 36)
	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.instances))

	require.NoError(t, c1.Submit(context.Background(), validRequest()))
	assert.Equal(t, StatusSuccess, c1.Status())
	assert.Equal(t, StatusIdle, c2.Status(), "instances do not share status")

	got, ok := reg.Get(id1)
	require.True(t, ok)
	assert.Same(t, c1, got)
}

func TestRegistryUnmountClosesController(t *testing.T) {
	reg, metrics, _ := newTestRegistry(t, okRelay(), time.Hour)
	id, ctrl := reg.Mount()

	assert.True(t, reg.Unmount(id))
	assert.False(t, reg.Unmount(id))

	_, ok := reg.Get(id)
	assert.False(t, ok)
	assert.ErrorIs(t, ctrl.Submit(context.Background(), validRequest()), ErrClosed)
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.instances))
}

func TestRegistrySweepExpiresIdleInstances(t *testing.T) {
	reg, _, clock := newTestRegistry(t, okRelay(), 10*time.Minute)

	stale, _ := reg.Mount()
	clock.Advance(5 * time.Minute)
	fresh, ctrl := reg.Mount()
	clock.Advance(4 * time.Minute)
	require.NoError(t, ctrl.Submit(context.Background(), validRequest()))
	clock.Advance(3 * time.Minute)

	assert.Equal(t, 1, reg.Sweep(clock.Now()))

	_, ok := reg.Get(stale)
	assert.False(t, ok)
	_, ok = reg.Get(fresh)
	assert.True(t, ok)
}

func TestRegistrySweepKeepsInFlightInstances(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	relay := newRelayFunc(func(context.Context, ContactRequest) error {
		close(entered)
		<-release
		return nil
	})
	reg, _, clock := newTestRegistry(t, relay, time.Minute)
	id, ctrl := reg.Mount()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = ctrl.Submit(context.Background(), validRequest())
	}()
	<-entered

	clock.Advance(time.Hour)
	assert.Zero(t, reg.Sweep(clock.Now()))
	_, ok := reg.Get(id)
	assert.True(t, ok)

	close(release)
	<-done
}

func TestRegistrySweepDisabledWithoutTTL(t *testing.T) {
	reg, _, clock := newTestRegistry(t, okRelay(), 0)
	reg.Mount()

	clock.Advance(24 * time.Hour)
	assert.Zero(t, reg.Sweep(clock.Now()))
	assert.Equal(t, 1, reg.Len())
}

func TestRegistryCloseUnmountsAll(t *testing.T) {
	reg, _, _ := newTestRegistry(t, okRelay(), time.Hour)
	_, c1 := reg.Mount()
	_, c2 := reg.Mount()

	reg.Close()

	assert.Zero(t, reg.Len())
	assert.ErrorIs(t, c1.Submit(context.Background(), validRequest()), ErrClosed)
	assert.ErrorIs(t, c2.Submit(context.Background(), validRequest()), ErrClosed)
}

func TestRegistryRunStopsOnCancel(t *testing.T) {
	reg, _, _ := newTestRegistry(t, okRelay(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		reg.Run(ctx, 5*time.Millisecond)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRegistryMountedControllersReportMetrics(t *testing.T) {
	reg, metrics, _ := newTestRegistry(t, rejectingRelay(500), time.Hour)
	_, ctrl := reg.Mount()

	require.NoError(t, ctrl.Submit(context.Background(), validRequest()))

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.submissions.WithLabelValues(OutcomeRejected)))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.submissions.WithLabelValues(OutcomeSuccess)))
}

func TestRegistryLimitEvictsLeastRecentlyUsed(t *testing.T) {
	reg, metrics, clock := newTestRegistry(t, okRelay(), time.Hour)
	reg.SetLimit(2)

	first, firstCtrl := reg.Mount()
	clock.Advance(time.Minute)
	second, _ := reg.Mount()
	clock.Advance(time.Minute)
	firstCtrl.Touch()
	clock.Advance(time.Minute)

	third, _ := reg.Mount()

	assert.Equal(t, 2, reg.Len())
	_, ok := reg.Get(second)
	assert.False(t, ok, "least recently used instance is evicted")
	_, ok = reg.Get(first)
	assert.True(t, ok)
	_, ok = reg.Get(third)
	assert.True(t, ok)
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.instances))
}

func TestRegistryLimitSkipsInFlightInstances(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	relay := newRelayFunc(func(context.Context, ContactRequest) error {
		close(entered)
		<-release
		return nil
	})
	reg, _, clock := newTestRegistry(t, relay, time.Hour)
	reg.SetLimit(2)

	busy, busyCtrl := reg.Mount()
	clock.Advance(time.Minute)
	idle, _ := reg.Mount()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = busyCtrl.Submit(context.Background(), validRequest())
	}()
	<-entered
	clock.Advance(time.Minute)

	reg.Mount()

	_, ok := reg.Get(busy)
	assert.True(t, ok, "an instance with a relay call in flight is never evicted")
	_, ok = reg.Get(idle)
	assert.False(t, ok)

	close(release)
	<-done
}

func TestRegistryWithoutLimitGrows(t *testing.T) {
	reg, _, _ := newTestRegistry(t, okRelay(), time.Hour)
	reg.SetLimit(0)

	for i := 0; i < 5; i++ {
		reg.Mount()
	}
	assert.Equal(t, 5, reg.Len())
}

func TestControllerTouchKeepsInstanceFromSweep(t *testing.T) {
	reg, _, clock := newTestRegistry(t, okRelay(), 10*time.Minute)
	id, ctrl := reg.Mount()

	clock.Advance(8 * time.Minute)
	ctrl.Touch()
	clock.Advance(8 * time.Minute)

	assert.Zero(t, reg.Sweep(clock.Now()))
	_, ok := reg.Get(id)
	assert.True(t, ok)
}
