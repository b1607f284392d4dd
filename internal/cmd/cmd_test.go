package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/felixgeelhaar/homewhisper/internal/errors"
	"github.com/felixgeelhaar/homewhisper/internal/wizard"
)

// resetFlags restores every flag to its default so executions do not leak
// into each other through cobra's package-level command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

type result struct {
	out    string
	stderr string
	err    error
}

// execute runs the CLI with args and stdin.
func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	resetFlags(rootCmd)

	var out, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return result{out: out.String(), stderr: stderr.String(), err: err}
}

// isolate points the config home at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOMEWHISPER_HOME", home)
	for _, k := range []string{"STORE", "DATA_DIR", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE", "FORMAT", "DEFAULT_AREA", "NO_COLOR", "ALT_SCREEN"} {
		t.Setenv("HOMEWHISPER_"+k, "")
	}
	return home
}

// basicSectionInput completes the basic questions in plain mode, returns to
// the menu and quits.
const basicSectionInput = "1\n\n2\n1,2\nnew\nm\nq\n"

func TestVersionJSON(t *testing.T) {
	isolate(t)

	res := execute(t, "", "version", "--json")
	require.NoError(t, res.err)

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(res.out), &info))
	assert.NotEmpty(t, info["version"])
	assert.NotEmpty(t, info["go_version"])
}

func TestSections(t *testing.T) {
	isolate(t)

	res := execute(t, "", "sections")
	require.NoError(t, res.err)
	for _, want := range []string{"Basic Questions", "Smart Home", "budget", "commuteTime"} {
		assert.Contains(t, res.out, want)
	}
}

func TestStatusFresh(t *testing.T) {
	isolate(t)

	res := execute(t, "", "status")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "0/5 sections completed")
	assert.Contains(t, res.out, "Store: file")
}

func TestPlainSessionPersistsAcrossCommands(t *testing.T) {
	home := isolate(t)

	res := execute(t, basicSectionInput, "start", "--plain")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Welcome to Home Whisperer")
	assert.Contains(t, res.out, "Question 1/4 (25%)")
	assert.Contains(t, res.out, "Your Ideal Home Profile")
	assert.Contains(t, res.out, "$500,000")
	assert.Contains(t, res.out, "Your progress is saved")

	_, err := os.Stat(filepath.Join(home, "data", wizard.ProgressKey+".json"))
	require.NoError(t, err)

	t.Run("status", func(t *testing.T) {
		res := execute(t, "", "status", "--format", "json")
		require.NoError(t, res.err)

		var report StatusReport
		require.NoError(t, json.Unmarshal([]byte(res.out), &report))
		assert.Equal(t, 1, report.Completed)
		assert.True(t, report.Sections[0].Completed)
		assert.Equal(t, 4, report.Sections[0].Answered)
	})

	t.Run("answers by section", func(t *testing.T) {
		res := execute(t, "", "answers", "--by-section", "--format", "yaml")
		require.NoError(t, res.err)
		assert.Contains(t, res.out, "basic-questions:")
		assert.Contains(t, res.out, "location: suburbs")
	})

	t.Run("answers text", func(t *testing.T) {
		res := execute(t, "", "answers")
		require.NoError(t, res.err)
		assert.Contains(t, res.out, "Garden/Yard, Parking")
		assert.Contains(t, res.out, "New Construction (< 5 years)")
	})

	t.Run("welcome is not repeated", func(t *testing.T) {
		res := execute(t, "q\n", "start", "--plain")
		require.NoError(t, res.err)
		assert.NotContains(t, res.out, "Welcome to Home Whisperer")
		assert.Contains(t, res.out, "1/5 sections completed")
	})

	t.Run("results", func(t *testing.T) {
		res := execute(t, "", "results")
		require.NoError(t, res.err)
		assert.Contains(t, res.out, "Your Ideal Home Profile")
		assert.Contains(t, res.out, "Westside (93% match)")
		assert.Contains(t, res.out, "Your Story")
	})

	t.Run("results for one section", func(t *testing.T) {
		res := execute(t, "", "results", "basic-questions")
		require.NoError(t, res.err)
		assert.Contains(t, res.out, "Your Ideal Home Profile")
		assert.NotContains(t, res.out, "Your Story")
	})

	t.Run("results for incomplete section", func(t *testing.T) {
		res := execute(t, "", "results", "demographics")
		require.Error(t, res.err)
		assert.Equal(t, errs.ErrCodeWizardNoCompleted, errs.CodeOf(res.err))
	})

	t.Run("report export", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out", "report.html")
		res := execute(t, "", "results", "--out", path)
		require.NoError(t, res.err)
		assert.Contains(t, res.out, "Report written to")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "<h1")
		assert.Contains(t, string(data), "Home Buying Assistant Report")
	})

	t.Run("reset", func(t *testing.T) {
		res := execute(t, "", "reset", "--yes")
		require.NoError(t, res.err)
		assert.Contains(t, res.out, "All answers cleared.")

		res = execute(t, "", "status")
		require.NoError(t, res.err)
		assert.Contains(t, res.out, "0/5 sections completed")
	})
}

func TestPlainModeBackAndMenu(t *testing.T) {
	isolate(t)

	// Answer the budget, step back, leave to the menu and quit.
	res := execute(t, "1\n\nback\nmenu\nq\n", "start", "--plain")
	require.NoError(t, res.err)
	assert.Equal(t, 2, strings.Count(res.out, "Question 1/4 (25%)"))
	assert.Contains(t, res.out, "0/5 sections completed")
}

func TestPlainModeRejectsBadInput(t *testing.T) {
	isolate(t)

	res := execute(t, "2\n9\nteens\n", "start", "--plain")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "choose a number between 1 and")
	assert.Contains(t, res.out, `unknown option "teens"`)
}

func TestPlainModeRejectsOffStepSlider(t *testing.T) {
	isolate(t)

	res := execute(t, "1\n123456\n", "start", "--plain")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "invalid answer for: budget")
	assert.Equal(t, 2, strings.Count(res.out, "Question 1/4 (25%)"))
}

func TestPlainModeResultsNotice(t *testing.T) {
	isolate(t)

	res := execute(t, "r\nq\n", "start", "--plain")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Please complete at least one section first")
}

func TestResultsWithoutProgress(t *testing.T) {
	isolate(t)

	res := execute(t, "", "results")
	require.Error(t, res.err)
	assert.True(t, errors.Is(res.err, wizard.ErrNoCompletedSections))
}

func TestResultsUnknownSection(t *testing.T) {
	isolate(t)

	res := execute(t, "", "results", "attic")
	require.Error(t, res.err)
	assert.Equal(t, errs.ErrCodeInterviewSectionUnknown, errs.CodeOf(res.err))
}

func TestResetConfirmation(t *testing.T) {
	isolate(t)

	orig := confirmReset
	t.Cleanup(func() { confirmReset = orig })

	confirmReset = func() (bool, error) { return false, nil }
	res := execute(t, "", "reset")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Reset cancelled.")

	confirmReset = func() (bool, error) { return true, nil }
	res = execute(t, "", "reset")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "All answers cleared.")
}

func TestStatusWatchNeedsFileStore(t *testing.T) {
	isolate(t)

	res := execute(t, "", "status", "--watch", "--store", "memory")
	require.Error(t, res.err)
	assert.Equal(t, errs.ErrCodeStoreOpen, errs.CodeOf(res.err))
}

func TestSQLiteBackend(t *testing.T) {
	home := isolate(t)

	res := execute(t, basicSectionInput, "start", "--plain", "--store", "sqlite")
	require.NoError(t, res.err)

	_, err := os.Stat(filepath.Join(home, "data", "homewhisper.db"))
	require.NoError(t, err)

	res = execute(t, "", "status", "--store", "sqlite")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "1/5 sections completed")
}

func TestConfigCommands(t *testing.T) {
	home := isolate(t)
	want := filepath.Join(home, "config.yaml")

	res := execute(t, "", "config", "path")
	require.NoError(t, res.err)
	assert.Equal(t, want, strings.TrimSpace(res.out))

	res = execute(t, "", "config", "init")
	require.NoError(t, res.err)
	_, err := os.Stat(want)
	require.NoError(t, err)

	res = execute(t, "", "config", "init")
	require.Error(t, res.err)

	res = execute(t, "", "config", "init", "--force")
	require.NoError(t, res.err)

	res = execute(t, "", "config", "view", "--format", "json", "--store", "memory")
	require.NoError(t, res.err)
	var cfg map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.out), &cfg))
	assert.Equal(t, "memory", cfg["store"].(map[string]any)["backend"])
}

func TestInvalidFlagValues(t *testing.T) {
	isolate(t)

	res := execute(t, "", "status", "--store", "redis")
	require.Error(t, res.err)
	assert.True(t, strings.HasPrefix(string(errs.CodeOf(res.err)), "CONFIG"), "got %v", res.err)
}
