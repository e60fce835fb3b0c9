package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/karbobc/workday/cmd/workday/commands"
	"github.com/karbobc/workday/internal/app"
	"github.com/karbobc/workday/internal/build"
	"github.com/karbobc/workday/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockApp struct {
	serveFunc   func(ctx context.Context) error
	refreshFunc func(ctx context.Context) error
	checkFunc   func(ctx context.Context, date string) (app.CheckResult, error)
}

func (m *mockApp) Serve(ctx context.Context) error {
	if m.serveFunc != nil {
		return m.serveFunc(ctx)
	}
	return nil
}

func (m *mockApp) Refresh(ctx context.Context) error {
	if m.refreshFunc != nil {
		return m.refreshFunc(ctx)
	}
	return nil
}

func (m *mockApp) Check(ctx context.Context, date string) (app.CheckResult, error) {
	if m.checkFunc != nil {
		return m.checkFunc(ctx, date)
	}
	return app.CheckResult{}, nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	cli := commands.New(a)
	out := new(bytes.Buffer)
	cli.SetOutput(out, new(bytes.Buffer))
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCommands_Serve(t *testing.T) {
	t.Run("passes the command context", func(t *testing.T) {
		type key struct{}
		var seen any
		mock := &mockApp{serveFunc: func(ctx context.Context) error {
			seen = ctx.Value(key{})
			return nil
		}}

		cli := commands.New(mock)
		cli.SetArgs([]string{"serve"})
		require.NoError(t, cli.Execute(context.WithValue(context.Background(), key{}, "value")))
		assert.Equal(t, "value", seen)
	})

	t.Run("returns serve errors", func(t *testing.T) {
		mock := &mockApp{serveFunc: func(context.Context) error {
			return domain.ErrServerFailed
		}}

		_, err := execute(t, mock, "serve")
		require.ErrorIs(t, err, domain.ErrServerFailed)
	})

	t.Run("rejects arguments", func(t *testing.T) {
		mock := &mockApp{serveFunc: func(context.Context) error {
			panic("should not be called")
		}}

		_, err := execute(t, mock, "serve", "extra")
		require.Error(t, err)
	})
}

func TestCommands_Refresh(t *testing.T) {
	called := false
	mock := &mockApp{refreshFunc: func(context.Context) error {
		called = true
		return nil
	}}

	_, err := execute(t, mock, "refresh")
	require.NoError(t, err)
	assert.True(t, called)

	mock.refreshFunc = func(context.Context) error {
		return errors.New("simulated error")
	}
	_, err = execute(t, mock, "refresh")
	require.ErrorContains(t, err, "simulated error")
}

func TestCommands_Check(t *testing.T) {
	t.Run("workday", func(t *testing.T) {
		var gotDate string
		mock := &mockApp{checkFunc: func(_ context.Context, date string) (app.CheckResult, error) {
			gotDate = date
			return app.CheckResult{Date: date, IsWorkday: true}, nil
		}}

		out, err := execute(t, mock, "check", "2024-10-12")
		require.NoError(t, err)
		assert.Equal(t, "2024-10-12", gotDate)
		assert.Equal(t, "✓ 2024-10-12 workday\n", out)
	})

	t.Run("day off defaults to today", func(t *testing.T) {
		var gotDate = "unset"
		mock := &mockApp{checkFunc: func(_ context.Context, date string) (app.CheckResult, error) {
			gotDate = date
			return app.CheckResult{Date: "2024-10-01", IsWorkday: false}, nil
		}}

		out, err := execute(t, mock, "check")
		require.NoError(t, err)
		assert.Empty(t, gotDate)
		assert.Equal(t, "✗ 2024-10-01 day off\n", out)
	})

	t.Run("lookup error", func(t *testing.T) {
		mock := &mockApp{checkFunc: func(context.Context, string) (app.CheckResult, error) {
			return app.CheckResult{}, domain.ErrDateNotFound
		}}

		out, err := execute(t, mock, "check", "1999-01-01")
		require.ErrorIs(t, err, domain.ErrDateNotFound)
		assert.Empty(t, out)
	})

	t.Run("too many arguments", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "check", "2024-10-01", "2024-10-02")
		require.Error(t, err)
	})
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "workday version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", out)

	out, err = execute(t, &mockApp{}, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "workday version "+build.Version)
}
