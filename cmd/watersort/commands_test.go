package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/watersort/internal/domain"
	"svw.info/watersort/internal/generator"
	"svw.info/watersort/internal/infrastructure/storage"
)

const duoYAML = `name: Duo
solve_depth: 5
bottles:
  - [red, red, blue, blue]
  - [blue, blue, red, red]
  - []
`

func levelsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "easy"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "easy", "duo.yaml"), []byte(duoYAML), 0o644))
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "missing.yaml")
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", cfg, "--log-level", "error"}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSolveCommand(t *testing.T) {
	out, err := execute(t, "--levels-dir", levelsDir(t), "solve", "duo")
	require.NoError(t, err)
	assert.Contains(t, out, " 1: RE RE BL BL\n")
	assert.Contains(t, out, "solution in 3 moves")
	assert.Contains(t, out, "  1. pour 1 into 3\n  2. pour 2 into 1\n  3. pour 2 into 3\n")
}

func TestSolveCommandReplay(t *testing.T) {
	out, err := execute(t, "--levels-dir", levelsDir(t), "solve", "duo", "--replay")
	require.NoError(t, err)
	assert.Contains(t, out, " 1: RE RE RE RE\n 2: -- -- -- --\n 3: BL BL BL BL\n")
}

func TestSolveCommandDepthTooShallow(t *testing.T) {
	out, err := execute(t, "--levels-dir", levelsDir(t), "solve", "duo", "--depth", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "no solution within 2 moves")
}

func TestSolveCommandUnknownLevel(t *testing.T) {
	_, err := execute(t, "--levels-dir", levelsDir(t), "solve", "nope")
	assert.ErrorIs(t, err, domain.ErrLevelNotFound)
}

func TestLevelsCommand(t *testing.T) {
	out, err := execute(t, "levels")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "starter")
	assert.Contains(t, out, "classic")

	out, err = execute(t, "--levels-dir", levelsDir(t), "levels")
	require.NoError(t, err)
	assert.Contains(t, out, "duo")
	assert.Contains(t, out, "Duo")
	assert.NotContains(t, out, "starter")
}

func TestGenerateCommand(t *testing.T) {
	out, err := execute(t, "generate", "--difficulty", "easy", "--seed", "42")
	require.NoError(t, err)
	lvl, err := storage.ParseLevel([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "gen-easy-42", lvl.ID)
	assert.Equal(t, domain.Easy, lvl.Difficulty)
	b, err := lvl.Board()
	require.NoError(t, err)
	assert.True(t, b.CanBeSorted())

	again, err := execute(t, "generate", "--difficulty", "easy", "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "levels")
	assert.Error(t, err)
}

func TestPlayDealHonoursSolverTimeout(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "watersort.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("solver:\n  timeout: 1ns\n  verify: true\n"), 0o600))

	start := time.Now()
	_, err := execute(t, "--config", cfg, "play", "--difficulty", "expert", "--seed", "7")
	assert.ErrorIs(t, err, generator.ErrNoLevel)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestPlayDealGeneratesWithinTimeout(t *testing.T) {
	a := &app{configPath: filepath.Join(t.TempDir(), "missing.yaml"), logLevel: "error"}
	require.NoError(t, a.setup())
	lvl, err := a.deal(context.Background(), nil, "easy", 11)
	require.NoError(t, err)
	assert.Equal(t, "gen-easy-11", lvl.ID)

	_, err = a.deal(context.Background(), []string{"starter"}, "", 0)
	require.NoError(t, err)
}
