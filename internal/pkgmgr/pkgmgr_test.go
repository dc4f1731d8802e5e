package pkgmgr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubLookPath(t *testing.T, present ...string) {
	t.Helper()
	orig := lookPathFn
	lookPathFn = func(file string) (string, error) {
		for _, p := range present {
			if p == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", errors.New("not found")
	}
	t.Cleanup(func() { lookPathFn = orig })
}

func TestCommandFormatting(t *testing.T) {
	pacman, ok := Lookup("pacman")
	require.True(t, ok)
	assert.Equal(t, "sudo pacman -S --needed cargo neovim", pacman.Command([]string{"cargo", "neovim"}))
	assert.Equal(t, "", pacman.Command(nil))

	brew, ok := Lookup("BREW")
	require.True(t, ok)
	assert.Equal(t, "brew install wget", brew.Command([]string{"wget"}))

	assert.Equal(t, "", Manager{}.Command([]string{"wget"}))
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("portage")
	assert.False(t, ok)
}

func TestDetectUsesPath(t *testing.T) {
	stubLookPath(t, "apt-get", "brew")
	found := Detect()
	require.Len(t, found, 2)
	assert.Equal(t, "apt", found[0].Name)
	assert.Equal(t, "brew", found[1].Name)

	pacman, _ := Lookup("pacman")
	assert.False(t, pacman.Available())
}

func TestDetectNothing(t *testing.T) {
	stubLookPath(t)
	assert.Empty(t, Detect())
}

func TestKnownIsACopy(t *testing.T) {
	list := Known()
	list[0].Name = "changed"
	assert.Equal(t, "pacman", Known()[0].Name)
	assert.Contains(t, Names(), "zypper")
}

func TestResolve(t *testing.T) {
	stubLookPath(t, "dnf")

	auto, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "dnf", auto.Name)

	none, err := Resolve("None")
	require.NoError(t, err)
	assert.True(t, none.IsZero())

	paru, err := Resolve("paru")
	require.NoError(t, err)
	assert.Equal(t, "paru -S --needed sl", paru.Command([]string{"sl"}))

	_, err = Resolve("portage")
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestResolveWithNothingInstalled(t *testing.T) {
	stubLookPath(t)
	mgr, err := Resolve("auto")
	require.NoError(t, err)
	assert.True(t, mgr.IsZero())
}
