package kitectx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func waitExpired(t *testing.T, ctx Context) {
	deadline := time.Now().Add(time.Second)
	for !ctx.Expired() {
		if time.Now().After(deadline) {
			t.Fatal("context never expired")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestFromContext(t *testing.T) {
	std, cancel := context.WithCancel(context.Background())
	err := FromContext(std, func(ctx Context) error {
		cancel()
		waitExpired(t, ctx)
		ctx.CheckAbort()
		return nil
	})
	require.Error(t, err)
	require.IsType(t, ContextExpiredError{}, err)
}

func TestFromContext_Immediate(t *testing.T) {
	std, cancel := context.WithCancel(context.Background())
	cancel()
	err := FromContext(std, func(ctx Context) error {
		return nil
	})
	require.Error(t, err)
}

func TestWithTimeout(t *testing.T) {
	var ran bool
	err := Background().WithTimeout(time.Millisecond, func(ctx Context) error {
		ran = true
		waitExpired(t, ctx)
		ctx.CheckAbort()
		return nil
	})
	require.True(t, ran)
	require.True(t, IsDeadlineExceeded(err))
}

func TestBackgroundNeverAborts(t *testing.T) {
	ctx := Background()
	require.False(t, ctx.Expired())
	require.NotPanics(t, ctx.CheckAbort)
}

func TestOtherPanicsPropagate(t *testing.T) {
	require.Panics(t, func() {
		FromContext(context.Background(), func(ctx Context) error {
			panic("boom")
		})
	})
}
