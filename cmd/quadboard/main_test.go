package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/quadboard/internal/intent"
	"github.com/mesh-intelligence/quadboard/internal/paths"
	"github.com/mesh-intelligence/quadboard/internal/summary"
	"github.com/mesh-intelligence/quadboard/pkg/types"
)

// testEnv is an isolated config directory for one test.
type testEnv struct {
	t         *testing.T
	ConfigDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv(paths.EnvJournal, "")
	t.Setenv(paths.EnvConfigDir, "")
	return &testEnv{t: t, ConfigDir: filepath.Join(t.TempDir(), "config")}
}

// writeConfig replaces config.yaml with content.
func (e *testEnv) writeConfig(content string) {
	e.t.Helper()
	require.NoError(e.t, os.MkdirAll(e.ConfigDir, 0o755))
	require.NoError(e.t, os.WriteFile(filepath.Join(e.ConfigDir, configFileExt), []byte(content), 0o644))
}

// run executes the CLI with stdin and returns stdout and the command error.
func (e *testEnv) run(stdin string, args ...string) (string, error) {
	e.t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config-dir", e.ConfigDir}, args...))
	err := root.Execute()
	return out.String(), err
}

func (e *testEnv) mustRun(stdin string, args ...string) string {
	e.t.Helper()
	out, err := e.run(stdin, args...)
	require.NoError(e.t, err)
	return out
}

func jsonl(t *testing.T, intents ...intent.Intent) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, intent.Encode(&buf, intents))
	return buf.String()
}

func drop(id, quadrant string) intent.Intent {
	return intent.Intent{Type: intent.TypeDrop, Item: &intent.Payload{ID: id, Content: "Item " + id}, Quadrant: quadrant}
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)
	out := env.mustRun("", "version")
	assert.Contains(t, out, "quadboard v")
	assert.Contains(t, out, "module: github.com/mesh-intelligence/quadboard")

	_, err := os.Stat(env.ConfigDir)
	assert.True(t, os.IsNotExist(err), "version does not touch the config dir")
}

func TestInitWritesDefaultConfig(t *testing.T) {
	env := newTestEnv(t)
	out := env.mustRun("", "init")

	path := filepath.Join(env.ConfigDir, configFileExt)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var cfg types.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, types.DefaultSeedItems(types.DefaultSeedCount), cfg.SeedItems)
	assert.Equal(t, types.SummaryFormatText, cfg.SummaryFormat)
	assert.Empty(t, cfg.JournalDSN)

	env.writeConfig("seed_items:\n  - id: a\n    content: Alpha\n")
	env.mustRun("", "init")
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Alpha", "init keeps an existing config")
}

func TestConfigCommand(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig(`seed_items:
  - id: a
    content: Alpha
  - id: b
    content: Beta
log_level: error
summary_format: json
`)

	out := env.mustRun("", "config", "--strict")

	var cfg types.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, []types.Item{{ID: "a", Content: "Alpha"}, {ID: "b", Content: "Beta"}}, cfg.SeedItems)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, types.SummaryFormatJSON, cfg.SummaryFormat)
	assert.Equal(t, types.MemoryJournal, cfg.JournalDSN)
	assert.True(t, cfg.Strict, "--strict overrides config")
}

func TestInvalidConfigIsSystemError(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig("seed_items:\n  - id: a\n  - id: a\n")

	_, err := env.run("", "config")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrDuplicateItem)
	assert.Equal(t, exitSysError, exitCode(err))
}

func TestRunEndToEndSummary(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig("seed_items:\n" +
		"  - {id: \"1\", content: Item 1}\n" +
		"  - {id: \"2\", content: Item 2}\n" +
		"  - {id: \"3\", content: Item 3}\n" +
		"  - {id: \"4\", content: Item 4}\n" +
		"  - {id: \"5\", content: Item 5}\n")

	input := jsonl(t, drop("1", "2"), drop("2", "4"), intent.Intent{Type: intent.TypeSubmit})
	out := env.mustRun(input, "run")

	want := "Layout Summary:\n\n" +
		"Page 1:\n" +
		"  Position 1 - Quadrant 1:\n" +
		"    • No items\n" +
		"  Position 2 - Quadrant 2:\n" +
		"    • Item 1\n" +
		"  Position 3 - Quadrant 3:\n" +
		"    • No items\n" +
		"  Position 4 - Quadrant 4:\n" +
		"    • Item 2\n" +
		"\n"
	assert.Equal(t, want, out)
}

func TestRunFromFileWithJSONSummary(t *testing.T) {
	env := newTestEnv(t)
	file := filepath.Join(t.TempDir(), "intents.jsonl")
	input := jsonl(t,
		drop("1", "1"), drop("2", "2"), drop("3", "3"), drop("4", "4"),
		intent.Intent{Type: intent.TypeAddPage},
		drop("5", "3"),
	)
	require.NoError(t, os.WriteFile(file, []byte(input), 0o644))

	out := env.mustRun("", "run", file, "--json", "--summary")

	var r summary.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	require.Len(t, r.Pages, 2)
	assert.Equal(t, 2, r.Pages[1].Number)
	assert.Equal(t, "3", r.Pages[1].Positions[2].QuadrantID)
	assert.Equal(t, []types.Item{{ID: "5", Content: "Item 5"}}, r.Pages[1].Positions[2].Items)
}

func TestRunSkipsRejectedIntents(t *testing.T) {
	env := newTestEnv(t)
	input := jsonl(t,
		drop("1", "1"),
		drop("1", "2"),
		intent.Intent{Type: intent.TypeAddPage},
		drop("2", "9"),
		drop("2", "2"),
	)

	out := env.mustRun(input, "run", "--history")

	assert.Contains(t, out, "  1  place    page 1  item 1 -> quadrant 1\n")
	assert.Contains(t, out, "  2  place    page 1  item 2 -> quadrant 2\n")
	assert.NotContains(t, out, "  3  ")
}

func TestRunStrictStopsAtFirstRejection(t *testing.T) {
	env := newTestEnv(t)
	input := jsonl(t,
		drop("1", "1"),
		intent.Intent{Type: intent.TypeAddPage},
		intent.Intent{Type: intent.TypeSubmit},
	)

	out, err := env.run(input, "run", "--strict")

	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrPageNotFull)
	assert.Contains(t, err.Error(), "intent 2")
	assert.Equal(t, exitUserError, exitCode(err))
	assert.NotContains(t, out, "Layout Summary", "intents after the rejection are not applied")
}

func TestRunMalformedInput(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run("{\"type\":\"submit\"}\n{\"type\":\"teleport\"}\n", "run")

	require.Error(t, err)
	assert.ErrorIs(t, err, intent.ErrUnknownIntent)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestRunMissingFile(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run("", "run", filepath.Join(t.TempDir(), "missing.jsonl"))
	require.Error(t, err)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestRunShowRendersCurrentPage(t *testing.T) {
	env := newTestEnv(t)
	out := env.mustRun(jsonl(t, drop("3", "4")), "run", "--show")
	assert.Contains(t, out, "Page 1 of 1")
	assert.Contains(t, out, "Quadrant 4")
	assert.Contains(t, out, "Item 3")
}

func TestRunFileJournal(t *testing.T) {
	env := newTestEnv(t)
	dbPath := filepath.Join(t.TempDir(), "journal.db")

	env.mustRun(jsonl(t, drop("1", "1")), "run", "--journal", dbPath)

	_, err := os.Stat(dbPath)
	assert.NoError(t, err, "journal file is created")
}

func TestShellSession(t *testing.T) {
	env := newTestEnv(t)
	script := strings.Join([]string{
		"# fill page one",
		"drop 1 1",
		"drop 2 2",
		"drop 3 3",
		"status",
		"add-page",
		"drop 4 4",
		"add-page",
		"status",
		"layout 1=6,0,6,6 2=0,0,6,6 3=0,6,6,6 4=6,6,6,6",
		"bogus",
		"prev",
		"submit",
		"history",
		"quit",
		"drop 5 1",
	}, "\n")

	out := env.mustRun(script, "shell")

	assert.Contains(t, out, "Available Items")
	assert.Contains(t, out, "page 1 of 1, full: false, items available: 5\n")
	assert.Contains(t, out, "page 2 of 2, full: false, items available: 4\n")
	assert.Contains(t, out, `error: unknown intent type: "bogus"`)
	assert.Contains(t, out, "Page 2:\n  Position 1 - Quadrant 2:\n    • No items\n  Position 2 - Quadrant 1:\n")
	assert.Contains(t, out, "  5  add_page page 2\n")
	assert.Contains(t, out, "  7  navigate page 1\n")
	assert.NotContains(t, out, "item 5 -> quadrant 1", "commands after quit are ignored")
}

func TestShellStrictStops(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run("drop 1 1\ndrop 1 2\nsubmit\n", "shell", "--strict")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrNotFound))
}

func TestShellHelpAndShow(t *testing.T) {
	env := newTestEnv(t)
	out := env.mustRun("help\nshow\nitems\n", "shell")
	assert.Contains(t, out, "drop <item-id> <quadrant>")
	assert.Contains(t, out, "Page 1 of 1")
	assert.Contains(t, out, "Item 8")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitUserError, exitCode(errors.New("plain")))
	assert.Equal(t, exitSysError, exitCode(sysError(errors.New("disk"))))
	assert.Equal(t, exitUserError, exitCode(userError(errors.New("bad"))))
}
