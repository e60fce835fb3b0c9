package store

import (
	"context"
	"errors"
	"time"

	"github.com/karbobc/workday/internal/core/domain"
	"github.com/rogpeppe/go-internal/lockedfile"
	"go.trai.ch/zerr"
)

type lockResult struct {
	unlock func()
	err    error
}

// acquire takes the companion lock of path, giving up when ctx is done or timeout elapses.
func acquire(ctx context.Context, path string, timeout time.Duration) (func(), error) {
	lockPath := domain.LockPath(path)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result := make(chan lockResult, 1)
	go func() {
		unlock, err := lockedfile.MutexAt(lockPath).Lock()
		result <- lockResult{unlock: unlock, err: err}
	}()

	select {
	case res := <-result:
		if res.err != nil {
			return nil, zerr.With(errors.Join(domain.ErrLockAcquireFailed, res.err), "lock", lockPath)
		}
		return res.unlock, nil
	case <-ctx.Done():
		// The lock may still be granted later; release it as soon as it is.
		go func() {
			if res := <-result; res.err == nil {
				res.unlock()
			}
		}()
		return nil, zerr.With(errors.Join(domain.ErrLockTimeout, ctx.Err()), "lock", lockPath)
	}
}
