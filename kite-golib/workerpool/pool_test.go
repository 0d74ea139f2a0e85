package workerpool

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kiteco/esparse/kite-golib/errors"
	"github.com/stretchr/testify/require"
)

func Test_RunJobs(t *testing.T) {
	pool := New(5)
	defer pool.Stop()

	var jobs []Job
	var completed int32
	for i := 0; i < 15; i++ {
		jobs = append(jobs, func() error {
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&completed, 1)
			return nil
		})
	}

	pool.Add(jobs)
	require.NoError(t, pool.Wait())
	require.EqualValues(t, len(jobs), completed, "expected all jobs to be completed")
}

func Test_AddBlocking(t *testing.T) {
	pool := New(2)
	defer pool.Stop()

	var completed int32
	jobs := []Job{
		func() error { atomic.AddInt32(&completed, 1); return nil },
		func() error { atomic.AddInt32(&completed, 1); return nil },
		func() error { atomic.AddInt32(&completed, 1); return nil },
	}
	pool.AddBlocking(jobs)
	require.NoError(t, pool.Wait())
	require.EqualValues(t, 3, completed)
}

func Test_Errors(t *testing.T) {
	pool := New(3)
	defer pool.Stop()

	var jobs []Job
	for i := 0; i < 6; i++ {
		i := i
		jobs = append(jobs, func() error {
			if i%2 == 0 {
				return fmt.Errorf("job %d failed", i)
			}
			return nil
		})
	}

	pool.Add(jobs)
	err := pool.Wait()
	require.Error(t, err)
	multi, ok := err.(errors.Errors)
	require.True(t, ok)
	require.Equal(t, 3, multi.Len())
}

func Test_StopWait(t *testing.T) {
	pool := New(5)

	var jobs []Job
	var completed int32
	for i := 0; i < 15; i++ {
		jobs = append(jobs, func() error {
			time.Sleep(100 * time.Millisecond)
			atomic.AddInt32(&completed, 1)
			return nil
		})
	}

	pool.Add(jobs)
	<-time.After(50 * time.Millisecond)
	pool.Stop()
	require.NoError(t, pool.Wait())
	require.True(t, atomic.LoadInt32(&completed) < int32(len(jobs)), "expected some jobs to be dropped")
}
