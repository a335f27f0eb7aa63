package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HamletTheHamster/violin-visuals/internal/config"
	"github.com/HamletTheHamster/violin-visuals/internal/runner"
	"github.com/HamletTheHamster/violin-visuals/internal/visuals"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, false)
	logger.Debug("hidden")
	assert.Zero(t, buf.Len())
	logger.Info("shown")
	assert.Contains(t, buf.String(), "violins")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	newLogger(&buf, true).Debug("details")
	assert.Contains(t, buf.String(), "details")
}

func TestLoggerFromContext(t *testing.T) {
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	l := newLogger(&bytes.Buffer{}, true)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
}

func TestTimerStop(t *testing.T) {
	var buf bytes.Buffer
	startTimer(newLogger(&buf, false), "rendered").stop("routine", "anatomy")
	out := buf.String()
	assert.NotContains(t, out, "starting")
	assert.Contains(t, out, "rendered")
	assert.Contains(t, out, "routine=anatomy")
	assert.Contains(t, out, "took=")
}

func TestRoutineCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "anatomy", "--out", dir, "--dpi", "10")
	require.NoError(t, err)

	path := filepath.Join(dir, "anatomy_visualization.png")
	assert.Contains(t, out, fmt.Sprintf("Anatomy visualization saved as '%s'", path))
	assert.FileExists(t, path)
}

func TestConstructionGIF(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "construction", "--gif", "--out", dir, "--dpi", "8")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "construction_visualization.png"))
	assert.FileExists(t, filepath.Join(dir, visuals.AnimationName))
	assert.Contains(t, out, "Construction animation saved as")
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "custom.toml")
	fromFile := filepath.Join(dir, "from-file")
	require.NoError(t, os.WriteFile(cfgPath, []byte(fmt.Sprintf("output = %q\ndpi = 10\n", fromFile)), 0o644))

	_, err := execute(t, "patterns", "--config", cfgPath)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(fromFile, "patterns_visualization.png"))

	fromFlag := filepath.Join(dir, "from-flag")
	_, err = execute(t, "patterns", "--config", cfgPath, "--out", fromFlag)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(fromFlag, "patterns_visualization.png"))
}

func TestInvalidSettings(t *testing.T) {
	_, err := execute(t, "anatomy", "--out", t.TempDir(), "--dpi", "0")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = execute(t, "anatomy", "--out", t.TempDir(), "--bandwidth", "-1")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestDescribe(t *testing.T) {
	out, err := execute(t, "describe", "patterns", "--csv", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Patterns")
	assert.Contains(t, out, "Unimodal")
	assert.Contains(t, out, "routine,panel,center,n")

	csvPath := filepath.Join(t.TempDir(), "stats.csv")
	_, err = execute(t, "describe", "anatomy", "--csv", csvPath)
	require.NoError(t, err)
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "anatomy,Anatomy,5.0000,5,")

	_, err = execute(t, "describe", "histogram")
	assert.ErrorIs(t, err, visuals.ErrUnknown)
}

func TestRoutinesWithoutGnuplot(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	dir := t.TempDir()
	for _, name := range visuals.Names() {
		_, err := execute(t, name, "--out", dir, "--dpi", "8")
		require.NoError(t, err, name)
		assert.FileExists(t, filepath.Join(dir, name+"_visualization.png"))
	}
}

func TestPreviewNotLinked(t *testing.T) {
	_, err := execute(t, "preview", "anatomy")
	assert.Error(t, err)
}

func TestRoutineTasks(t *testing.T) {
	cfg := config.Default()
	cfg.Output = "imgs"
	cfg.DPI = 72
	cfg.Seed = 7
	cfg.Bandwidth = 0.25

	tasks := routineTasks("/bin/violins", []string{"-x"}, cfg)
	require.Len(t, tasks, 4)
	assert.Equal(t, "anatomy", tasks[0].Name)
	assert.Equal(t, "construction", tasks[3].Name)

	cmd := tasks[1].Command(context.Background())
	assert.Equal(t, []string{
		"/bin/violins", "-x", "patterns",
		"--out", "imgs", "--dpi", "72", "--seed", "7", "--bandwidth", "0.25",
	}, cmd.Args)
}

// TestCLIHelperProcess runs the real command line as a routine child,
// except for the routine named by HELPER_FAIL_ROUTINE, which fails.
func TestCLIHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	args = args[1:]
	if args[0] == os.Getenv("HELPER_FAIL_ROUTINE") {
		fmt.Fprintf(os.Stderr, "%s exploded\n", args[0])
		os.Exit(1)
	}

	cmd := NewRootCommand()
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(0)
}

func TestAllCommand(t *testing.T) {
	t.Setenv("GO_WANT_HELPER_PROCESS", "1")
	t.Setenv("HELPER_FAIL_ROUTINE", "pitfalls")
	origExe, origPrefix := executable, childPrefix
	executable = func() (string, error) { return os.Args[0], nil }
	childPrefix = []string{"-test.run=TestCLIHelperProcess", "--"}
	t.Cleanup(func() { executable, childPrefix = origExe, origPrefix })

	dir := t.TempDir()
	out, err := execute(t, "all", "--out", dir, "--dpi", "10")
	require.NoError(t, err, "partial failure is not an error without --strict")
	assert.Contains(t, out, "Running anatomy...\n✓ Anatomy visualization saved as")
	assert.Contains(t, out, "Error running pitfalls:\npitfalls exploded")
	assert.Contains(t, out, "Running construction...\n✓ Construction visualization saved as")
	assert.Contains(t, out, "  - construction_visualization.png")

	for _, name := range []string{"anatomy", "patterns", "construction"} {
		assert.FileExists(t, filepath.Join(dir, name+"_visualization.png"))
	}
	assert.NoFileExists(t, filepath.Join(dir, "pitfalls_visualization.png"))

	_, err = execute(t, "--strict", "--out", t.TempDir(), "--dpi", "10")
	assert.ErrorIs(t, err, runner.ErrPartial)
}
