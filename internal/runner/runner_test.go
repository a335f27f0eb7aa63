package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helperTask re-executes the test binary as a fake routine.
func helperTask(name, mode string) Task {
	return Task{
		Name: name,
		Command: func(ctx context.Context) *exec.Cmd {
			cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess", "--", mode, name)
			cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1")
			return cmd
		},
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	mode, name := args[1], args[2]
	switch mode {
	case "ok":
		fmt.Printf("✓ %s visualization saved as 'output/%s_visualization.png'\n", name, name)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "boom in %s\n", name)
		os.Exit(3)
	}
}

func TestRunIsolatesFailures(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{
		Out:   &out,
		Dir:   "output",
		Files: []string{"anatomy_visualization.png", "patterns_visualization.png"},
	}

	res := r.Run(context.Background(), []Task{
		helperTask("anatomy", "ok"),
		helperTask("patterns", "fail"),
		helperTask("pitfalls", "ok"),
	})

	require.Len(t, res.Outcomes, 3)
	assert.NoError(t, res.Outcomes[0].Err)
	assert.Error(t, res.Outcomes[1].Err)
	assert.NoError(t, res.Outcomes[2].Err, "a failure must not stop later routines")
	assert.Equal(t, "boom in patterns", res.Outcomes[1].Stderr)

	require.Len(t, res.Failed(), 1)
	assert.ErrorIs(t, res.Err(), ErrPartial)
	assert.Contains(t, res.Err().Error(), "patterns")

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Generating all visualizations...\n"))
	assert.Contains(t, text, "Running anatomy...\n✓ anatomy visualization saved as 'output/anatomy_visualization.png'")
	assert.Contains(t, text, "Error running patterns:\nboom in patterns")
	assert.Contains(t, text, "Running pitfalls...")
	assert.Contains(t, text, "All visualizations generated!")
	assert.Contains(t, text, "Generated files in 'output':\n  - anatomy_visualization.png\n  - patterns_visualization.png\n")

	assert.Less(t, strings.Index(text, "Running anatomy"), strings.Index(text, "Running patterns"))
	assert.Less(t, strings.Index(text, "Running patterns"), strings.Index(text, "Running pitfalls"))
}

func TestRunAllSucceed(t *testing.T) {
	var out bytes.Buffer
	res := (&Runner{Out: &out}).Run(context.Background(), []Task{helperTask("anatomy", "ok")})
	assert.NoError(t, res.Err())
	assert.Empty(t, res.Failed())
	assert.NotContains(t, out.String(), "Error running")
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	res := (&Runner{Out: &out}).Run(ctx, []Task{helperTask("anatomy", "ok"), helperTask("patterns", "ok")})
	require.Len(t, res.Outcomes, 2)
	for _, o := range res.Outcomes {
		assert.ErrorIs(t, o.Err, context.Canceled)
	}
	assert.NotContains(t, out.String(), "Running")
}
