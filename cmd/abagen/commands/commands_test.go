package commands

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/abasp/builder"
	"github.com/katalvlaran/abasp/config"
	"github.com/katalvlaran/abasp/errors"
	"github.com/katalvlaran/abasp/goal"
)

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abagen.toml")
	require.NoError(t, writeDefaultConfig(path, false))

	cfg, err := config.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	require.NoError(t, validateConfigFile(path))

	err = writeDefaultConfig(path, false)
	require.Error(t, err)
	assert.NotEmpty(t, errors.GetAllHints(err))
	assert.NoError(t, writeDefaultConfig(path, true))
}

func TestValidateConfigFile_UnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abagen.toml")
	require.NoError(t, os.WriteFile(path, []byte("parallel = 2\nthreads = 4\n"), 0o644))

	err := validateConfigFile(path)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfigError(err))
	assert.Contains(t, err.Error(), "threads")
}

// TestValidateConfigFile_FileOnly checks the file values and a missing file.
func TestValidateConfigFile_FileOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "abagen.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\natom_dir = \".\"\n"), 0o644))

	err := validateConfigFile(path)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfigError(err))
	assert.Contains(t, err.Error(), path)

	err = validateConfigFile(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestRenderConfig(t *testing.T) {
	text, err := renderConfig(config.Default(), config.FormatTOML)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "# abagen configuration\n"))
	assert.Contains(t, text, "[[instances]]")

	text, err = renderConfig(config.Default(), config.FormatJSON)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "{"))

	_, err = renderConfig(config.Default(), "xml")
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
}

func TestApplyGenerateFlags(t *testing.T) {
	fs := pflag.NewFlagSet("generate", pflag.ContinueOnError)
	defineGenerateFlags(fs)
	require.NoError(t, fs.Parse([]string{"--out", "runs", "--style", "schema", "--closed-order", "--parallel", "3"}))

	cfg := config.Default()
	abs := filepath.Join(t.TempDir(), "meta.csv")
	cfg.Output.Metadata = abs
	require.NoError(t, applyGenerateFlags(fs, cfg))

	assert.Equal(t, "schema", cfg.Encoding.Style)
	assert.True(t, cfg.Encoding.ClosedOrder)
	assert.Equal(t, 3, cfg.Parallel)
	assert.Equal(t, filepath.Join("runs", config.DefaultAtomDir), cfg.Output.AtomDir)
	assert.Equal(t, filepath.Join("runs", config.DefaultManifest), cfg.Output.Manifest)
	assert.Equal(t, abs, cfg.Output.Metadata)
}

func TestApplyGenerateFlags_Unset(t *testing.T) {
	fs := pflag.NewFlagSet("generate", pflag.ContinueOnError)
	defineGenerateFlags(fs)
	require.NoError(t, fs.Parse(nil))

	cfg := config.Default()
	require.NoError(t, applyGenerateFlags(fs, cfg))
	assert.Equal(t, config.Default(), cfg)

	fs = pflag.NewFlagSet("generate", pflag.ContinueOnError)
	defineGenerateFlags(fs)
	require.NoError(t, fs.Parse([]string{"--style", "prose"}))
	assert.True(t, errors.IsInvalidConfigError(applyGenerateFlags(fs, config.Default())))
}

func TestRenderEncoding(t *testing.T) {
	f, err := builder.Generate(builder.DefaultParams(), builder.WithSeed(1))
	require.NoError(t, err)

	atom, err := renderEncoding(f, EncodingAtom, "", false)
	require.NoError(t, err)
	assert.Contains(t, atom, "head(1,")

	def, err := renderEncoding(f, EncodingDefault, "schema", false)
	require.NoError(t, err)
	assert.Contains(t, def, "succ(")

	_, err = renderEncoding(f, "dot", "", false)
	assert.ErrorIs(t, err, ErrUnknownEncoding)
}

func TestPrintFramework(t *testing.T) {
	f, err := builder.Generate(builder.DefaultParams(), builder.WithSeed(3))
	require.NoError(t, err)
	assert.NoError(t, printFramework(f, goal.Select(f, 2, rand.New(rand.NewSource(3)))))
}

func TestVersionCmd(t *testing.T) {
	var buf bytes.Buffer
	VersionCmd.SetOut(&buf)
	VersionCmd.SetArgs([]string{})
	require.NoError(t, VersionCmd.Execute())
	assert.Contains(t, buf.String(), "abagen ")
	assert.Contains(t, buf.String(), "Go: ")
}
