package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/pkgpick/internal/app"
	"github.com/atomicstack/pkgpick/internal/catalog"
	"github.com/atomicstack/pkgpick/internal/pkgmgr"
	"github.com/atomicstack/pkgpick/internal/prompt"
	"github.com/atomicstack/pkgpick/internal/selection"
	"github.com/atomicstack/pkgpick/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	env    *env
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	got    *app.Config
}

func newHarness(t *testing.T, res app.Result, runErr error) *harness {
	t.Helper()
	dir := t.TempDir()
	h := &harness{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	h.env = &env{
		stdout:  h.stdout,
		stderr:  h.stderr,
		environ: func() []string { return []string{"XDG_CONFIG_HOME=" + dir} },
		catalog: catalog.Default,
		runTUI: func(cfg app.Config, cat catalog.Catalog) (app.Result, error) {
			h.got = &cfg
			return res, runErr
		},
		asker:    func() prompt.Asker { return acceptAll{} },
		terminal: func() bool { return true },
	}
	return h
}

func (h *harness) run(t *testing.T, args ...string) int {
	t.Helper()
	logFile := filepath.Join(t.TempDir(), "pkgpick.log")
	return execute(h.env, append(args, "--log-file="+logFile))
}

type acceptAll struct{}

func (acceptAll) SelectManager(options []pkgmgr.Manager) (pkgmgr.Manager, error) {
	return options[0], nil
}

func (acceptAll) SelectPackages(_ string, entries []catalog.Entry) ([]string, error) {
	var picked []string
	for _, e := range entries {
		if e.Selected {
			picked = append(picked, e.Name)
		}
	}
	return picked, nil
}

func (acceptAll) Confirm(string) (bool, error) { return true, nil }

func submitted(names ...string) app.Result {
	items := make([]selection.Item, len(names))
	for i, n := range names {
		items[i] = selection.Item{Category: catalog.LabelCLI, Name: n}
	}
	mgr, _ := pkgmgr.Lookup("pacman")
	return app.Result{Submitted: true, Selection: selection.New(mgr, items)}
}

func TestRootPrintsReportOnSubmit(t *testing.T) {
	h := newHarness(t, submitted("btop", "duf"), nil)

	code := h.run(t, "--manager", "pacman", "--width", "100")
	require.Equal(t, 0, code, h.stderr.String())
	assert.Equal(t, "All selected packages:\nbtop duf\nInstall with: sudo pacman -S --needed btop duf\n", h.stdout.String())
	require.NotNil(t, h.got)
	assert.Equal(t, 100, h.got.Width)
	assert.Equal(t, "pacman", h.got.Manager)
}

func TestRootQuietOnQuit(t *testing.T) {
	h := newHarness(t, app.Result{}, nil)
	require.Equal(t, 0, h.run(t, "--manager", "none"))
	assert.Empty(t, h.stdout.String())
}

func TestRootJSONReport(t *testing.T) {
	h := newHarness(t, submitted("btop"), nil)
	require.Equal(t, 0, h.run(t, "--manager", "none", "-o", "json"))

	var sel selection.Selection
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &sel))
	assert.Equal(t, []string{"btop"}, sel.Names())
}

func TestRootConfigErrorsExitTwo(t *testing.T) {
	cases := [][]string{
		{"--tick-rate", "1ms"},
		{"--output", "xml"},
		{"--manager", "portage"},
		{"--width", "wide"},
		{"--bogus"},
	}
	for _, args := range cases {
		h := newHarness(t, app.Result{}, nil)
		code := h.run(t, args...)
		assert.Equal(t, 2, code, "args %v", args)
		assert.True(t, strings.HasPrefix(h.stderr.String(), "Configuration error: "), "args %v: %q", args, h.stderr.String())
		assert.Nil(t, h.got, "args %v must not start the picker", args)
	}
}

func TestRootEnvironmentError(t *testing.T) {
	h := newHarness(t, app.Result{}, nil)
	h.env.environ = func() []string { return []string{"PKGPICK_HEIGHT=tall", "XDG_CONFIG_HOME=" + t.TempDir()} }
	assert.Equal(t, 2, h.run(t))
}

func TestRootRuntimeErrorExitsOne(t *testing.T) {
	h := newHarness(t, app.Result{}, errors.New("event source: keyboard gone"))
	code := h.run(t, "--manager", "none")
	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: event source: keyboard gone\n", h.stderr.String())
}

func TestPromptCommand(t *testing.T) {
	h := newHarness(t, app.Result{}, nil)
	code := h.run(t, "prompt", "--manager", "none")
	require.Equal(t, 0, code, h.stderr.String())
	assert.Nil(t, h.got)

	want := strings.Join(catalogRequired(), " ")
	assert.Equal(t, "All selected packages:\n"+want+"\n", h.stderr.String())
	assert.Equal(t, "All selected packages:\n"+want+"\n", h.stdout.String())
}

func TestPromptNeedsTerminal(t *testing.T) {
	h := newHarness(t, app.Result{}, nil)
	h.env.terminal = func() bool { return false }
	assert.Equal(t, 1, h.run(t, "prompt", "--manager", "none"))
	assert.Contains(t, h.stderr.String(), errNoTerminal.Error())
}

func TestManagersCommand(t *testing.T) {
	orig := available
	available = func(m pkgmgr.Manager) bool { return m.Name == "apt" }
	t.Cleanup(func() { available = orig })

	h := newHarness(t, app.Result{}, nil)
	require.Equal(t, 0, h.run(t, "managers", "--manager", "none"))

	lines := strings.Split(strings.TrimSpace(h.stdout.String()), "\n")
	require.Len(t, lines, len(pkgmgr.Known())+1)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	var aptLine string
	for _, line := range lines {
		if strings.HasPrefix(line, "apt ") {
			aptLine = line
		}
	}
	assert.Contains(t, aptLine, "apt-get")
	assert.Contains(t, aptLine, "yes")
	assert.Contains(t, aptLine, "sudo apt-get install -y <packages>")
}

func TestVersionCommand(t *testing.T) {
	orig := version
	SetVersion("1.2.3")
	t.Cleanup(func() { version = orig })

	h := newHarness(t, app.Result{}, nil)
	require.Equal(t, 0, h.run(t, "version", "--manager", "none"))
	assert.Equal(t, "pkgpick version 1.2.3\n", h.stdout.String())
}

func catalogRequired() []string {
	sec, _ := catalog.Default().Section(0)
	var names []string
	for _, e := range sec.Entries {
		if e.Selected {
			names = append(names, e.Name)
		}
	}
	return names
}

func TestManagersGolden(t *testing.T) {
	lines := managerTable(pkgmgr.Known(), func(m pkgmgr.Manager) bool { return m.Name == "yay" })
	testutil.AssertGolden(t, "managers.golden", strings.Join(lines, "\n")+"\n")
}
