package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSweeper struct {
	calls atomic.Int32
	err   error
}

func (c *countingSweeper) Sweep(context.Context) (int64, error) {
	c.calls.Add(1)
	return 1, c.err
}

func TestPlanReconciler_CorreAlArrancarYRepite(t *testing.T) {
	m, err := NewManager(time.UTC, nil)
	require.NoError(t, err)
	job := &countingSweeper{}
	require.NoError(t, m.RegisterPlanReconciler(job, 20*time.Millisecond))

	m.Start()
	m.Start()
	assert.Eventually(t, func() bool { return job.calls.Load() >= 3 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, m.Stop())
	require.NoError(t, m.Stop())
}

func TestPlanReconciler_ErrorNoDetiene(t *testing.T) {
	m, err := NewManager(nil, nil)
	require.NoError(t, err)
	job := &countingSweeper{err: errors.New("sin conexión")}
	require.NoError(t, m.RegisterPlanReconciler(job, 20*time.Millisecond))

	m.Start()
	defer m.Stop()
	assert.Eventually(t, func() bool { return job.calls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
}
