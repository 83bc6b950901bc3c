package batch_test

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/abasp/atomenc"
	"github.com/katalvlaran/abasp/batch"
	"github.com/katalvlaran/abasp/config"
	"github.com/katalvlaran/abasp/core"
	"github.com/katalvlaran/abasp/defaultenc"
	"github.com/katalvlaran/abasp/errors"
	"github.com/katalvlaran/abasp/goal"
)

// tempConfig returns the stock configuration writing under a fresh directory.
func tempConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := config.Default()
	cfg.Output.AtomDir = filepath.Join(root, config.DefaultAtomDir)
	cfg.Output.DefaultDir = filepath.Join(root, config.DefaultDefaultDir)
	cfg.Output.Metadata = filepath.Join(root, config.DefaultMetadata)
	cfg.Output.Manifest = filepath.Join(root, config.DefaultManifest)
	return cfg
}

func readDir(t *testing.T, dir string) map[string]string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		out[e.Name()] = string(data)
	}
	return out
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRun_Layout(t *testing.T) {
	cfg := tempConfig(t)
	res, err := batch.Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, res.Instances, len(cfg.Instances))

	rows := readCSV(t, cfg.Output.Metadata)
	require.Len(t, rows, 1+res.Files())
	assert.Equal(t, batch.MetadataHeader, rows[0])

	atomFiles := readDir(t, cfg.Output.AtomDir)
	defaultFiles := readDir(t, cfg.Output.DefaultDir)

	unique := map[string]bool{}
	next := 1
	for _, in := range res.Instances {
		assert.NotEmpty(t, in.Goals)
		assert.LessOrEqual(t, len(in.Goals), cfg.Instances[in.Index-1].Goals)

		atomText, err := atomenc.Encode(in.Framework)
		require.NoError(t, err)
		defaultText, err := defaultenc.Encode(in.Framework, defaultenc.UniversalFactHeads(in.Framework))
		require.NoError(t, err)

		for i, g := range in.Goals {
			name := in.Files[i]
			unique[name] = true
			assert.Equal(t, batch.FileName(in.Index, g), name)
			assert.Equal(t, []string{name, batch.InstanceName(in.Index), g.Label(), string(g.Standpoint)}, rows[next])
			next++

			wantAtom := strings.Join(append([]string{atomText}, atomenc.GoalLines(g.Standpoint, g.Head)...), "\n")
			assert.Equal(t, wantAtom, atomFiles[name])
			assert.Equal(t, defaultText+"\n"+defaultenc.GoalConstraint(g.Standpoint, g.Head), defaultFiles[name])
		}
	}
	assert.Len(t, atomFiles, len(unique))
	assert.Len(t, defaultFiles, len(unique))
}

func TestRun_ParallelMatchesSequential(t *testing.T) {
	seq := tempConfig(t)
	seq.Parallel = 1
	par := tempConfig(t)
	par.Parallel = 4

	_, err := batch.Run(context.Background(), seq)
	require.NoError(t, err)
	_, err = batch.Run(context.Background(), par)
	require.NoError(t, err)

	assert.Equal(t, readDir(t, seq.Output.AtomDir), readDir(t, par.Output.AtomDir))
	assert.Equal(t, readDir(t, seq.Output.DefaultDir), readDir(t, par.Output.DefaultDir))

	a, err := os.ReadFile(seq.Output.Metadata)
	require.NoError(t, err)
	b, err := os.ReadFile(par.Output.Metadata)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestRun_SchemaAndClosedOrder(t *testing.T) {
	cfg := tempConfig(t)
	cfg.Encoding.Style = string(defaultenc.StyleSchema)
	cfg.Encoding.ClosedOrder = true

	res, err := batch.Run(context.Background(), cfg)
	require.NoError(t, err)

	in := res.Instances[len(res.Instances)-1]
	require.NotEmpty(t, in.Goals)
	want, err := defaultenc.Encode(in.Framework, defaultenc.UniversalFactHeads(in.Framework),
		defaultenc.WithStyle(defaultenc.StyleSchema))
	require.NoError(t, err)

	got := readDir(t, cfg.Output.DefaultDir)[in.Files[0]]
	assert.True(t, strings.HasPrefix(got, want), "default file starts with the schema encoding")

	wantAtom, err := atomenc.Encode(in.Framework, atomenc.WithClosedOrder())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(readDir(t, cfg.Output.AtomDir)[in.Files[0]], wantAtom))
}

func TestRun_ClearsOutputDirs(t *testing.T) {
	cfg := tempConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.Output.AtomDir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Output.AtomDir, "stale.lp"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Output.AtomDir, "nested", "old.lp"), []byte("x"), 0o644))

	_, err := batch.Run(context.Background(), cfg)
	require.NoError(t, err)

	files := readDir(t, cfg.Output.AtomDir)
	assert.NotContains(t, files, "stale.lp")
	assert.NotContains(t, files, "nested")
}

func TestRun_Manifest(t *testing.T) {
	cfg := tempConfig(t)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	res, err := batch.Run(context.Background(), cfg,
		batch.WithRunID("run-1"),
		batch.WithClock(func() time.Time { return at }))
	require.NoError(t, err)
	assert.Equal(t, "run-1", res.RunID)

	data, err := os.ReadFile(cfg.Output.Manifest)
	require.NoError(t, err)
	var m batch.Manifest
	require.NoError(t, yaml.Unmarshal(data, &m))
	assert.Equal(t, "run-1", m.RunID)
	assert.True(t, at.Equal(m.CreatedAt))
	assert.Equal(t, "formula", m.Style)
	require.Len(t, m.Instances, len(cfg.Instances))
	for i, mi := range m.Instances {
		f := res.Instances[i].Framework
		assert.Equal(t, batch.InstanceName(i+1), mi.Name)
		assert.Equal(t, int64(i+1), mi.Seed)
		assert.Equal(t, len(f.Rules), mi.Rules)
		assert.Equal(t, len(f.Order), mi.Edges)
		assert.Equal(t, 2+i, mi.RulesMin)
		assert.Equal(t, 3+i, mi.RulesMax)
		assert.Equal(t, len(res.Instances[i].Goals), mi.Goals)
	}
}

func TestRun_NoManifest(t *testing.T) {
	cfg := tempConfig(t)
	manifest := cfg.Output.Manifest
	cfg.Output.Manifest = ""

	_, err := batch.Run(context.Background(), cfg)
	require.NoError(t, err)
	_, err = os.Stat(manifest)
	assert.True(t, os.IsNotExist(err))
}

// TestRun_Cancelled leaves earlier output in place when the run never finishes.
func TestRun_Cancelled(t *testing.T) {
	cfg := tempConfig(t)
	require.NoError(t, os.MkdirAll(cfg.Output.AtomDir, 0o755))
	stale := filepath.Join(cfg.Output.AtomDir, "previous.lp")
	require.NoError(t, os.WriteFile(stale, []byte("kept"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := batch.Run(ctx, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(cfg.Output.Metadata)
	assert.True(t, os.IsNotExist(statErr))

	data, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.Equal(t, "kept", string(data))
	_, statErr = os.Stat(cfg.Output.DefaultDir)
	assert.True(t, os.IsNotExist(statErr), "default dir is not created before the run completes")
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := tempConfig(t)
	cfg.Instances[0].Atoms = 1

	_, err := batch.Run(context.Background(), cfg)
	assert.True(t, errors.IsInvalidConfigError(err))
}

func TestFileName(t *testing.T) {
	g := goal.Goal{Standpoint: "s3", Head: core.Neg("a7")}
	assert.Equal(t, "instance_2_goal-s3-not-a7.lp", batch.FileName(2, g))
	assert.Equal(t, "instance_2", batch.InstanceName(2))
}

func TestClearDir_CreatesMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, batch.ClearDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
