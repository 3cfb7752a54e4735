package scheduler_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-exact-age/internal/scheduler"
)

func TestDelayed_RunsAfterDelay(t *testing.T) {
	d := scheduler.NewDelayed(20 * time.Millisecond)
	defer d.Close()

	var ran atomic.Int32
	start := time.Now()
	done := make(chan time.Duration, 1)

	ticket := d.Schedule(func(tk scheduler.Ticket) {
		ran.Add(1)
		assert.True(t, d.Current(tk), "Running task must hold the current ticket")
		done <- time.Since(start)
	})
	assert.True(t, d.Pending())
	assert.True(t, d.Current(ticket))

	select {
	case elapsed := <-done:
		assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond)
	case <-time.After(2 * time.Second):
		t.Fatal("Task never ran")
	}

	assert.EqualValues(t, 1, ran.Load())
	assert.False(t, d.Pending())
}

// TestDelayed_Supersede schedules bursts of requests: only the last one runs.
func TestDelayed_Supersede(t *testing.T) {
	d := scheduler.NewDelayed(30 * time.Millisecond)
	defer d.Close()

	var mu sync.Mutex
	var runs []int

	var last scheduler.Ticket
	for i := 0; i < 5; i++ {
		i := i
		last = d.Schedule(func(scheduler.Ticket) {
			mu.Lock()
			runs = append(runs, i)
			mu.Unlock()
		})
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(runs) == 1
	}, 2*time.Second, 5*time.Millisecond)

	// Leave room for a stale timer to fire if supersession were broken.
	time.Sleep(60 * time.Millisecond)

	mu.Lock()
	assert.Equal(t, []int{4}, runs)
	mu.Unlock()
	assert.True(t, d.Current(last))
}

// TestDelayed_StaleTicketAfterRun covers a task that is already running when
// a newer request arrives: its ticket must stop being current.
func TestDelayed_StaleTicketAfterRun(t *testing.T) {
	d := scheduler.NewDelayed(0)
	defer d.Close()

	entered := make(chan scheduler.Ticket)
	release := make(chan struct{})
	result := make(chan bool, 1)

	d.Schedule(func(tk scheduler.Ticket) {
		entered <- tk
		<-release
		result <- d.Current(tk)
	})

	first := <-entered
	second := d.Schedule(func(scheduler.Ticket) {})
	close(release)

	assert.False(t, <-result, "Superseded task must observe it is stale")
	assert.NotEqual(t, first, second)
}

func TestDelayed_Cancel(t *testing.T) {
	d := scheduler.NewDelayed(20 * time.Millisecond)
	defer d.Close()

	var ran atomic.Bool
	ticket := d.Schedule(func(scheduler.Ticket) { ran.Store(true) })
	d.Cancel()

	assert.False(t, d.Pending())
	assert.False(t, d.Current(ticket))

	time.Sleep(60 * time.Millisecond)
	assert.False(t, ran.Load(), "Cancelled task must not run")
}

func TestDelayed_Close(t *testing.T) {
	d := scheduler.NewDelayed(10 * time.Millisecond)

	var ran atomic.Bool
	d.Schedule(func(scheduler.Ticket) { ran.Store(true) })
	d.Close()

	ticket := d.Schedule(func(scheduler.Ticket) { ran.Store(true) })
	assert.Zero(t, ticket)
	assert.False(t, d.Current(ticket))
	assert.False(t, d.Pending())

	time.Sleep(40 * time.Millisecond)
	assert.False(t, ran.Load())
}
