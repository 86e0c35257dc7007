package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/simdslice/hwy/contrib/reduce"
	"github.com/ajroetker/simdslice/internal/config"
)

// execute runs the CLI with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	prev := reduce.UsingFallback()
	t.Cleanup(func() { reduce.SetFallback(prev) })

	// Point --config at a missing file so a local config cannot leak in.
	args = append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSumMinMax(t *testing.T) {
	input := "10 20 3 4 5 6 7"

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"sum", "--type", "i32"}, "55\n"},
		{[]string{"min", "--type", "i32"}, "3\n"},
		{[]string{"max", "--type", "i32"}, "20\n"},
		{[]string{"sum", "-t", "u8"}, "55\n"},
		{[]string{"max", "-t", "f64"}, "20\n"},
		{[]string{"sum", "-t", "f32", "--no-simd"}, "55\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := execute(t, input, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCommasAndNewlines(t *testing.T) {
	out, err := execute(t, "20,3,\n4, 5\n", "stats", "-t", "int")
	require.NoError(t, err)
	assert.Equal(t, "count: 4\nsum: 32\nmin: 3\nmax: 20\n", out)
}

func TestEmptyInput(t *testing.T) {
	out, err := execute(t, "", "min", "-t", "u16")
	require.NoError(t, err)
	assert.Equal(t, "none\n", out)

	out, err = execute(t, "  \n", "sum")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	out, err = execute(t, "", "stats", "-t", "i8")
	require.NoError(t, err)
	assert.Equal(t, "count: 0\nsum: 0\nmin: none\nmax: none\n", out)
}

func TestIntegerSumWraps(t *testing.T) {
	out, err := execute(t, "127 1", "sum", "-t", "i8")
	require.NoError(t, err)
	assert.Equal(t, "-128\n", out)
}

func TestReadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("1.5 2.5 -4"), 0o600))

	out, err := execute(t, "", "sum", path)
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	_, err = execute(t, "", "sum", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input")
}

func TestInvalidInput(t *testing.T) {
	_, err := execute(t, "1 2 x", "sum", "-t", "i64")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid value #3 "x"`)

	_, err = execute(t, "300", "max", "-t", "u8")
	require.Error(t, err, "out of range for u8")
}

func TestUnknownType(t *testing.T) {
	_, err := execute(t, "1", "sum", "-t", "complex")
	require.ErrorIs(t, err, config.ErrUnknownType)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("type: u32\nno_simd: true\n"), 0o600))

	prev := reduce.UsingFallback()
	t.Cleanup(func() { reduce.SetFallback(prev) })

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("4294967295 1"))
	cmd.SetArgs([]string{"--config", path, "sum"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "0\n", out.String(), "u32 from the config file wraps")
	assert.True(t, reduce.UsingFallback(), "no_simd from the config file")
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "level: ")
	assert.Contains(t, out, "lanes: 4\n")
	assert.Contains(t, out, "vek acceleration: ")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "hwyreduce v"+version+" ("+commit+")\n", out)
}

func TestTypeFlagOverridesBadEnv(t *testing.T) {
	t.Setenv("HWYREDUCE_TYPE", "bogus")

	out, err := execute(t, "1 2", "sum", "--type", "i32")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	_, err = execute(t, "1 2", "sum")
	require.ErrorIs(t, err, config.ErrUnknownType)
}

func TestTypeFlagOverridesBadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("type: complex128\n"), 0o600))

	prev := reduce.UsingFallback()
	t.Cleanup(func() { reduce.SetFallback(prev) })

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("200 100"))
	cmd.SetArgs([]string{"--config", path, "sum", "--type", "u8"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "44\n", out.String())
}

func TestVersionIgnoresConfig(t *testing.T) {
	t.Setenv("HWYREDUCE_TYPE", "bogus")

	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "hwyreduce v"+version+" ("+commit+")\n", out)
}

func TestEnvOnlyWithoutConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	t.Setenv("HWYREDUCE_TYPE", "i8")

	prev := reduce.UsingFallback()
	t.Cleanup(func() { reduce.SetFallback(prev) })

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("100 100"))
	cmd.SetArgs([]string{"sum"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "-56\n", out.String(), "i8 from the environment wraps")
}

func TestRunReduceUnknownType(t *testing.T) {
	var buf bytes.Buffer
	err := runReduce(&buf, "1", "bogus", opSum, false)
	require.ErrorIs(t, err, config.ErrUnknownType)
	assert.Empty(t, buf.String())
}
