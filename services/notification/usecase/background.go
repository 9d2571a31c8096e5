package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/reliefhub/internal/pkg/logger"
	"github.com/piresc/reliefhub/internal/pkg/requestcontext"
)

// backgroundTimeout bounds a detached send so shutdown never waits forever
const backgroundTimeout = 30 * time.Second

// runBackground runs task detached from the request that started it. The
// request and trace ids of parent are carried over for log correlation.
func (uc *NotificationUC) runBackground(parent context.Context, name string, task func(ctx context.Context) error) {
	requestID := requestcontext.GetRequestID(parent)
	traceID := requestcontext.GetTraceID(parent)

	uc.tasks.Add(1)
	go func() {
		defer uc.tasks.Done()

		ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()
		if requestID != "" {
			ctx = requestcontext.WithRequestContext(ctx, &requestcontext.RequestContext{
				RequestID: requestID,
				TraceID:   traceID,
			})
		}

		if err := runRecovered(ctx, task); err != nil {
			logger.Error("Background task failed",
				logger.String("task", name),
				logger.String("request_id", requestID),
				logger.Err(err))
			return
		}
		logger.Debug("Background task finished",
			logger.String("task", name),
			logger.String("request_id", requestID))
	}()
}

func runRecovered(ctx context.Context, task func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return task(ctx)
}

// Wait blocks until every background task has finished or ctx is done
func (uc *NotificationUC) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		uc.tasks.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
