package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/karbobc/workday/internal/app"
	"github.com/karbobc/workday/internal/core/domain"
	"github.com/karbobc/workday/internal/core/ports/mocks"
	"github.com/karbobc/workday/internal/engine/snapshot"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newComponents(t *testing.T) (*app.Components, *mocks.MockCalendarStore, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)

	store := mocks.NewMockCalendarStore(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	publisher := mocks.NewMockEventPublisher(ctrl)
	settings := &domain.Settings{Location: time.UTC, ShutdownTimeout: time.Second}

	application := app.New(settings, store, snapshot.NewHolder(), nil, nil, nil, publisher, logger)
	return &app.Components{App: application, Logger: logger}, store, logger
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	components, _, _ := newComponents(t)
	provider := func(context.Context) (*app.Components, error) {
		return components, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
	assert.Empty(t, stderr.String())
}

// TestRun_ProviderError verifies that initialization failures are printed to stderr.
func TestRun_ProviderError(t *testing.T) {
	provider := func(context.Context) (*app.Components, error) {
		return nil, errors.New("invalid configuration")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"serve"}, stderr, provider)
	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "Error: invalid configuration\n", stderr.String())
}

// TestRun_CommandError verifies that command failures are logged and exit with 1.
func TestRun_CommandError(t *testing.T) {
	components, store, logger := newComponents(t)
	store.EXPECT().Read(gomock.Any()).Return(nil, domain.ErrSnapshotNotFound)
	logger.EXPECT().Error(gomock.Cond(func(x any) bool {
		err, ok := x.(error)
		return ok && errors.Is(err, domain.ErrSnapshotNotFound)
	}))

	provider := func(context.Context) (*app.Components, error) {
		return components, nil
	}

	exitCode := run(context.Background(), []string{"check", "2024-10-01"}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}
