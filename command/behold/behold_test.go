package behold

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rafal.dev/behold/command"
	"rafal.dev/behold/pkg/behold"
	beholdctx "rafal.dev/behold/pkg/context"
)

func execute(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()

	beholdctx.Reset()

	var buf bytes.Buffer

	old := behold.Output
	behold.Output = &buf

	t.Cleanup(func() { behold.Output = old })

	cmd := NewCommand(command.NewApp(context.Background()))
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return buf.Bytes(), err
}

func switchFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "switches.yaml")

	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	return path
}

func TestShow(t *testing.T) {
	out, err := execute(t, "show", "hello", "world")
	require.NoError(t, err)

	goldie.New(t).Assert(t, "show", out)
}

func TestShowTag(t *testing.T) {
	out, err := execute(t, "show", "--tag", "f3", "hello")
	require.NoError(t, err)

	goldie.New(t).Assert(t, "show_tag", out)
}

func TestShowQuiet(t *testing.T) {
	out, err := execute(t, "show", "--when=false", "hello")
	require.NoError(t, err)

	goldie.New(t).Assert(t, "show_quiet", out)
}

func TestShowWhenContext(t *testing.T) {
	path := switchFile(t, "f3-1: true\n")

	out, err := execute(t, "-c", path, "show", "-k", "f3-1", "x")
	require.NoError(t, err)

	goldie.New(t).Assert(t, "show_context", out)

	out, err = execute(t, "-c", path, "show", "-k", "f3-2", "y")
	require.NoError(t, err)

	assert.Empty(t, out)
}

func TestContext(t *testing.T) {
	path := switchFile(t, "f3-1: true\nf3-2: false\n")

	out, err := execute(t, "-c", path, "context")
	require.NoError(t, err)

	goldie.New(t).Assert(t, "context", out)
}

func TestContextFromJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "switches.json")

	err := os.WriteFile(path, []byte(`{"f3-1": true, "f3-2": false}`), 0644)
	require.NoError(t, err)

	out, err := execute(t, "-c", path, "context")
	require.NoError(t, err)

	goldie.New(t).Assert(t, "context", out)
}

func TestContextJSON(t *testing.T) {
	path := switchFile(t, "f3-1: true\nf3-2: false\n")

	out, err := execute(t, "-c", path, "-f", "json", "context")
	require.NoError(t, err)

	goldie.New(t).Assert(t, "context_json", out)
}

func TestContextPreloadError(t *testing.T) {
	_, err := execute(t, "-c", filepath.Join(t.TempDir(), "nope.yaml"), "context")
	assert.ErrorContains(t, err, "context preload error")
}

func TestRunSkipped(t *testing.T) {
	_, err := execute(t, "run", "--when=false", "--", "no-such-binary-anywhere")
	assert.NoError(t, err)
}

func TestRunWhenContextOff(t *testing.T) {
	_, err := execute(t, "run", "-k", "never-set", "--", "no-such-binary-anywhere")
	assert.NoError(t, err)
}

func TestRunError(t *testing.T) {
	_, err := execute(t, "run", "--", "no-such-binary-anywhere")
	assert.ErrorContains(t, err, "run error")
}
