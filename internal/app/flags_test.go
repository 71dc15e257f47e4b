package app

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindDefaults(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, "seating", cfg.Sim)
	assert.Equal(t, 6, cfg.Scale)
	assert.Empty(t, cfg.Set)
}

func TestBindOverrides(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{
		"-sim", "cubes", "-seed", "7", "-gps", "2",
		"-set", "dims=3", "-set", "rule=B36/S23", "-set", "dims=4",
	})
	require.NoError(t, err)
	assert.Equal(t, "cubes", cfg.Sim)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 2, cfg.GPS)
	assert.Equal(t, Overrides{"dims": "4", "rule": "B36/S23"}, cfg.Set)
	assert.Equal(t, "dims=4,rule=B36/S23", cfg.Set.String())
}

func TestBindRejectsBareKey(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	assert.Error(t, fs.Parse([]string{"-set", "dims"}))
}
