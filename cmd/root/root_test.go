package root

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rblc/parts-marketplace-backend/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRootCmd_Subcommands(t *testing.T) {
	cmd := GetRootCmd(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "migrate")
}

func TestServe_RefusesInvalidConfig(t *testing.T) {
	cmd := GetRootCmd(&config.Config{Env: "prod"}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	cmd.SetArgs([]string{"serve"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_HOST is required")
}
