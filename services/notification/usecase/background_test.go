package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/piresc/reliefhub/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBackground_DetachedFromRequest(t *testing.T) {
	uc := &NotificationUC{}

	parent, cancel := context.WithCancel(requestcontext.WithRequestContext(
		context.Background(), &requestcontext.RequestContext{RequestID: "req-1"}))

	started := make(chan struct{})
	release := make(chan struct{})
	var ctxErr error
	var requestID string
	uc.runBackground(parent, "test", func(ctx context.Context) error {
		close(started)
		<-release
		ctxErr = ctx.Err()
		requestID = requestcontext.GetRequestID(ctx)
		return nil
	})

	<-started
	cancel()
	close(release)
	waitBackground(t, uc)

	assert.NoError(t, ctxErr, "cancelling the request must not cancel the task")
	assert.Equal(t, "req-1", requestID)
}

func TestRunBackground_RecoversPanics(t *testing.T) {
	uc := &NotificationUC{}

	var ran int32
	uc.runBackground(context.Background(), "panics", func(ctx context.Context) error {
		atomic.StoreInt32(&ran, 1)
		panic("boom")
	})
	uc.runBackground(context.Background(), "fails", func(ctx context.Context) error {
		return errors.New("failed")
	})

	waitBackground(t, uc)
	assert.Equal(t, int32(1), atomic.LoadInt32(&ran))
}

func TestWait_HonoursDeadline(t *testing.T) {
	uc := &NotificationUC{}

	release := make(chan struct{})
	uc.runBackground(context.Background(), "slow", func(ctx context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := uc.Wait(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	require.NoError(t, uc.Wait(context.Background()))
}
