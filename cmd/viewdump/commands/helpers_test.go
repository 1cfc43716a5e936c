package commands

import (
	"testing"

	"github.com/rawbytedev/bufview/internal/config"
	"github.com/stretchr/testify/require"
)

func mustDefaults(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())
	return cfg
}
