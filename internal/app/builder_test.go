package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/karbobc/workday/internal/app"
	_ "github.com/karbobc/workday/internal/wiring"
	"github.com/stretchr/testify/require"
)

func TestNewApp_Wiring(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("WORKDAY_CONFIG", "")
	t.Setenv("WORKDAY_DATA_PATH", filepath.Join(t.TempDir(), "data.json"))
	t.Setenv("WORKDAY_LISTEN_ADDR", "127.0.0.1:0")
	t.Setenv("WORKDAY_KAFKA_BROKERS", "")

	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)

	viaBuilder, err := app.NewApp(context.Background())
	require.NoError(t, err)
	require.NotNil(t, viaBuilder.App)
}
