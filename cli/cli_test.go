package cli_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/safedep/timelineviewer/cli"
	"github.com/safedep/timelineviewer/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const history = `date,application,url
24/10/1982,netscape,http://example.com/a
25/10/1982,firefox,http://example.com/b
26/10/1982,firefox,http://example.com/c
27/10/1982,firefox,http://example.com/d
28/10/1982,firefox,http://example.com/e
29/10/1982,firefox,http://example.com/f
30/10/1982,firefox,http://example.com/g
`

type testEnv struct {
	t          *testing.T
	tmpDir     string
	dataPath   string
	configPath string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithConfig(t, "output:\n  colors: never\n")
}

func newTestEnvWithConfig(t *testing.T, configYAML string) *testEnv {
	t.Helper()

	tmpDir := t.TempDir()
	dataPath := filepath.Join(tmpDir, "history.csv")
	configPath := filepath.Join(tmpDir, "config.yaml")

	require.NoError(t, os.WriteFile(dataPath, []byte(history), 0o600))
	require.NoError(t, os.WriteFile(configPath, []byte(configYAML), 0o600))

	return &testEnv{
		t:          t,
		tmpDir:     tmpDir,
		dataPath:   dataPath,
		configPath: configPath,
	}
}

func (env *testEnv) run(args ...string) (stdout, stderr string, err error) {
	env.t.Helper()

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)

	fullArgs := append([]string{"--config", env.configPath, "--no-color"}, args...)
	rootCmd.SetArgs(fullArgs)
	err = rootCmd.ExecuteContext(context.Background())
	return outBuf.String(), errBuf.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var coder cli.ExitCoder
	require.True(t, errors.As(err, &coder), "error %v carries no exit code", err)
	return coder.ExitCode()
}

func TestVersion(t *testing.T) {
	stdout, _, err := newTestEnv(t).run("version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "timelineviewer ")
	assert.Contains(t, stdout, "commit: ")
}

func TestSummary(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		args   []string
		assert func(t *testing.T, stdout string)
	}{
		{
			name: "table",
			args: []string{"summary", env.dataPath, "--scale", "days"},
			assert: func(t *testing.T, stdout string) {
				assert.Contains(t, stdout, "history.csv")
				assert.Contains(t, stdout, "1982-10-24")
				assert.Contains(t, stdout, "1982-10-30")
			},
		},
		{
			name: "json",
			args: []string{"summary", env.dataPath, "--scale", "days", "--format", "json", "--title", "browsing"},
			assert: func(t *testing.T, stdout string) {
				var s tui.SummaryView
				require.NoError(t, json.Unmarshal([]byte(stdout), &s))
				assert.Equal(t, "browsing", s.Title)
				assert.Equal(t, 7, s.Total)
				assert.Len(t, s.Buckets, 7)
			},
		},
		{
			name: "weeks",
			args: []string{"summary", env.dataPath, "--scale", "weeks", "--format", "json"},
			assert: func(t *testing.T, stdout string) {
				var s tui.SummaryView
				require.NoError(t, json.Unmarshal([]byte(stdout), &s))
				require.Len(t, s.Buckets, 1)
				assert.Equal(t, "1982-10-24", s.Buckets[0].Label)
				assert.Equal(t, 7.0, s.Buckets[0].Value)
			},
		},
		{
			name: "selected events as csv",
			args: []string{"summary", env.dataPath, "--events", "--format", "csv",
				"--columns", "date,url", "--group-by", "application",
				"--select-from", "29/10/1982", "--select-to", "1982-10-30"},
			assert: func(t *testing.T, stdout string) {
				rows, err := csv.NewReader(strings.NewReader(stdout)).ReadAll()
				require.NoError(t, err)
				assert.Equal(t, [][]string{
					{"group", "date", "url"},
					{"firefox", "29/10/1982", "http://example.com/f"},
					{"firefox", "30/10/1982", "http://example.com/g"},
				}, rows)
			},
		},
		{
			name: "events default to the date column",
			args: []string{"summary", env.dataPath, "--events", "--format", "jsonl"},
			assert: func(t *testing.T, stdout string) {
				lines := strings.Split(strings.TrimSpace(stdout), "\n")
				require.Len(t, lines, 7)
				assert.JSONEq(t, `{"date":"24/10/1982"}`, lines[0])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := env.run(tt.args...)
			require.NoError(t, err)
			tt.assert(t, stdout)
		})
	}
}

func TestRender_Terminal(t *testing.T) {
	env := newTestEnv(t)
	stdout, _, err := env.run("render", env.dataPath, "--scale", "days", "--rows", "4",
		"--columns", "date,url", "--group-by", "application")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Events per day, 1982-10-24 to 1982-10-30")
	assert.Contains(t, stdout, "█")
	assert.Contains(t, stdout, "firefox (6)")
	assert.Contains(t, stdout, "netscape (1)")
	assert.NotContains(t, stdout, "\x1b[")
}

func TestRender_HTML(t *testing.T) {
	env := newTestEnv(t)
	out := filepath.Join(env.tmpDir, "history.html")

	stdout, _, err := env.run("render", env.dataPath, "--chart", "area", "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote "+out)

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(page), "<html")
	assert.Contains(t, string(page), "areaStyle")
}

func TestRender_Stdin(t *testing.T) {
	env := newTestEnv(t)
	_, _, err := env.run("render", "-")
	assert.Equal(t, cli.ExitInput, exitCode(t, err))
}

func TestExport(t *testing.T) {
	env := newTestEnv(t)
	out := filepath.Join(env.tmpDir, "history.xlsx")

	_, _, err := env.run("export", env.dataPath, "-o", out, "--scale", "days",
		"--columns", "date,url", "--select-from", "29/10/1982", "--select-to", "30/10/1982")
	require.NoError(t, err)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Timeline", "Events"}, f.GetSheetList())
	rows, err := f.GetRows("Events")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestExport_RequiresOutput(t *testing.T) {
	env := newTestEnv(t)
	_, _, err := env.run("export", env.dataPath)
	assert.Error(t, err)
}

func TestErrors(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown scale", []string{"summary", env.dataPath, "--scale", "fortnights"}, cli.ExitConfig},
		{"half a selection", []string{"summary", env.dataPath, "--select-from", "1982-10-29"}, cli.ExitConfig},
		{"bad selection date", []string{"summary", env.dataPath, "--select-from", "soon", "--select-to", "later"}, cli.ExitConfig},
		{"bad output format", []string{"summary", env.dataPath, "--format", "xml"}, cli.ExitConfig},
		{"missing file", []string{"summary", filepath.Join(env.tmpDir, "absent.csv")}, cli.ExitInput},
		{"unknown extension", []string{"summary", env.configPath + ".txt"}, cli.ExitInput},
		{"bad source format", []string{"summary", env.dataPath, "--source-format", "xml"}, cli.ExitInput},
		{"view from stdin", []string{"view", "-"}, cli.ExitInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := env.run(tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, exitCode(t, err))
		})
	}
}

func TestInvalidConfigFile(t *testing.T) {
	env := newTestEnvWithConfig(t, "display:\n  chart_type: pie\n")
	_, _, err := env.run("summary", env.dataPath)
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfig, exitCode(t, err))
}

func TestConfigFileSetsDefaults(t *testing.T) {
	env := newTestEnvWithConfig(t, "output:\n  colors: never\ndisplay:\n  scale: days\n")
	stdout, _, err := env.run("summary", env.dataPath, "--format", "json")
	require.NoError(t, err)

	var s tui.SummaryView
	require.NoError(t, json.Unmarshal([]byte(stdout), &s))
	assert.Equal(t, "days", s.Scale)
}

func TestConfig(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		setup  func(env *testEnv)
		assert func(t *testing.T, stdout string, err error)
	}{
		{
			name: "show_defaults",
			args: []string{"config", "show"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.NoError(t, err)
				assert.Contains(t, stdout, "display.scale")
				assert.Contains(t, stdout, "months")
			},
		},
		{
			name: "show_json",
			args: []string{"config", "show", "--format", "json"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.NoError(t, err)
				var result tui.ConfigView
				require.NoError(t, json.Unmarshal([]byte(stdout), &result))
				assert.Contains(t, result.Values, "display")
			},
		},
		{
			name: "get_scale",
			args: []string{"config", "get", "display.scale"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "months\n", stdout)
			},
		},
		{
			name: "get_nonexistent_key",
			args: []string{"config", "get", "nonexistent.key"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "key not found")
			},
		},
		{
			name: "set_value",
			args: []string{"config", "set", "display.scale", "days"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.NoError(t, err)
				assert.Contains(t, stdout, "Set display.scale = days")
			},
		},
		{
			name: "set_invalid_value",
			args: []string{"config", "set", "display.chart_type", "pie"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.Error(t, err)
			},
		},
		{
			name: "set_unknown_key",
			args: []string{"config", "set", "display.timezone", "UTC"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.Error(t, err)
			},
		},
		{
			name: "init_existing_file",
			args: []string{"config", "init"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.Error(t, err)
			},
		},
		{
			name: "init_force",
			args: []string{"config", "init", "--force"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.NoError(t, err)
				assert.Contains(t, stdout, "Wrote ")
			},
		},
		{
			name: "reset",
			args: []string{"config", "reset"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.NoError(t, err)
				assert.Contains(t, stdout, "Configuration reset to defaults.")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.setup != nil {
				tt.setup(env)
			}
			stdout, _, err := env.run(tt.args...)
			tt.assert(t, stdout, err)
		})
	}
}

func TestConfig_SetPersists(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run("config", "set", "table.columns", "[date, url]")
	require.NoError(t, err)

	stdout, _, err := env.run("config", "get", "table.columns")
	require.NoError(t, err)
	assert.Equal(t, "- date\n- url\n", stdout)

	stdout, _, err = env.run("summary", env.dataPath, "--events", "--format", "csv", "--group-by", "application")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "group,date,url\n"), stdout)
}

func TestConfig_InitWritesFreshFile(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(env.tmpDir, "nested", "config.yaml")

	rootCmd := cli.NewRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", path, "config", "init"})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "scale: months")
}

func TestExitCodeOf(t *testing.T) {
	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeOf(nil))
	assert.Equal(t, cli.ExitGeneral, cli.ExitCodeOf(errors.New("boom")))
	assert.Equal(t, cli.ExitInput, cli.ExitCodeOf(cli.ErrInput("failed to load records", os.ErrNotExist)))
	assert.ErrorIs(t, cli.ErrRender("x", os.ErrClosed), os.ErrClosed)
}
