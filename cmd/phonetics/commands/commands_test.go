package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phonetics/align"
	"github.com/katalvlaran/phonetics/errs"
	"github.com/katalvlaran/phonetics/internal/config"
)

// setupTestEnv points the config lookup at an empty temp dir.
func setupTestEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvPath, filepath.Join(dir, "config.yaml"))
	t.Setenv("LOG_LEVEL", "")

	return dir
}

func runCmd(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err = root.Execute()

	return out.String(), errOut.String(), err
}

func TestConvert_Args(t *testing.T) {
	setupTestEnv(t)

	out, _, err := runCmd(t, "", "convert", "--from", "ipa", "--to", "kirshenbaum", "[tʰaː]", "[ka ta]")
	require.NoError(t, err)
	assert.Equal(t, "[t<h>a:]\n[ka ta]\n", out)

	out, _, err = runCmd(t, "", "convert", "-f", "ipa", "-t", "ipa", "--no-brackets", "[tʰaː]")
	require.NoError(t, err)
	assert.Equal(t, "tʰaː\n", out)
}

func TestConvert_Stdin(t *testing.T) {
	setupTestEnv(t)

	out, _, err := runCmd(t, "ʃʷiː\n\n[ka ta]\n", "convert", "--to", "x-sampa")
	require.NoError(t, err)
	assert.Equal(t, "[S_wi:]\n[ka ta]\n", out)

	_, _, err = runCmd(t, "ka\nk!a\n", "convert")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDecodingFailed)
	assert.Contains(t, err.Error(), "line 2")
}

func TestConvert_BadNotation(t *testing.T) {
	setupTestEnv(t)

	_, _, err := runCmd(t, "", "convert", "--to", "braille", "ka")
	assert.ErrorIs(t, err, errs.ErrValue)
}

func TestDescribe_Formats(t *testing.T) {
	setupTestEnv(t)

	out, _, err := runCmd(t, "", "describe", "[kʰaŋ˥˩]")
	require.NoError(t, err)
	assert.Contains(t, out, "notation: ipa")
	assert.Contains(t, out, "description: modal velar nasal")

	out, _, err = runCmd(t, "", "describe", "--format", "json", "[kʰaŋ˥˩]")
	require.NoError(t, err)
	assert.Contains(t, out, `"description": "open front unrounded vowel"`)
	assert.Contains(t, out, `"tone": "{2,0,-2}"`)
	assert.Contains(t, out, `"place": "velar"`)
	assert.Contains(t, out, `"backness": "front"`)

	out, _, err = runCmd(t, "", "describe", "-o", "table", "-n", "x-sampa", "[pa]")
	require.NoError(t, err)
	assert.Contains(t, out, "onset")
	assert.Contains(t, out, "voiceless bilabial stop")
	assert.Contains(t, out, "nucleus")

	out, _, err = runCmd(t, "", "describe", "--format", "json", "-n", "x-sampa", "[t)Sa]")
	require.NoError(t, err)
	assert.Contains(t, out, `"release": "laminal palato-alveolar sibilant fricative"`)
	assert.Contains(t, out, "sibilant affricate with laminal palato-alveolar release")

	_, _, err = runCmd(t, "", "describe", "--format", "xml", "[pa]")
	assert.ErrorContains(t, err, "unsupported output format")

	_, _, err = runCmd(t, "", "describe")
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	setupTestEnv(t)

	out, _, err := runCmd(t, "", "compare", "--format", "json", "[ba na na]", "[ba na]")
	require.NoError(t, err)
	assert.Contains(t, out, `"distance": 0,`)
	assert.Equal(t, 3, strings.Count(out, `"cost": 0`))

	out, _, err = runCmd(t, "", "compare", "-o", "table", "[pa]", "[ba]")
	require.NoError(t, err)
	assert.Contains(t, out, "[pa]")
	assert.Contains(t, out, "[ba]")

	_, _, err = runCmd(t, "", "compare", "--window", "-3", "[pa]", "[ba]")
	assert.ErrorIs(t, err, align.ErrBadInput)
}

func TestConfigFile(t *testing.T) {
	dir := setupTestEnv(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("notation: x-sampa\noutput_notation: ipa\nformat: json\n"), 0o644))

	out, _, err := runCmd(t, "", "--config", path, "convert", "S_wi:")
	require.NoError(t, err)
	assert.Equal(t, "[ʃʷiː]\n", out)

	out, _, err = runCmd(t, "", "--config", path, "describe", "pa")
	require.NoError(t, err)
	assert.Contains(t, out, `"notation": "x-sampa"`)

	require.NoError(t, os.WriteFile(path, []byte("format: xml\n"), 0o644))
	_, _, err = runCmd(t, "", "--config", path, "convert", "pa")
	assert.ErrorContains(t, err, "format")
}

func TestVerbose(t *testing.T) {
	setupTestEnv(t)

	_, stderr, err := runCmd(t, "", "-v", "convert", "ka")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "msg=converted")

	_, stderr, err = runCmd(t, "", "convert", "ka")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}
