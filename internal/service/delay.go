package service

import (
	"context"
	"time"
)

// wait blocks for d or until ctx is done. It stands in for network latency
// until submissions go to a real reservation backend.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
