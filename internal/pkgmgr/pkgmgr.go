// Package pkgmgr knows how the supported package managers spell an install
// command. Commands are only formatted, never executed.
package pkgmgr

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Manager describes one package manager.
type Manager struct {
	Name    string
	Binary  string
	Install []string
}

var known = []Manager{
	{Name: "pacman", Binary: "pacman", Install: []string{"sudo", "pacman", "-S", "--needed"}},
	{Name: "paru", Binary: "paru", Install: []string{"paru", "-S", "--needed"}},
	{Name: "yay", Binary: "yay", Install: []string{"yay", "-S", "--needed"}},
	{Name: "apt", Binary: "apt-get", Install: []string{"sudo", "apt-get", "install", "-y"}},
	{Name: "dnf", Binary: "dnf", Install: []string{"sudo", "dnf", "install", "-y"}},
	{Name: "zypper", Binary: "zypper", Install: []string{"sudo", "zypper", "install"}},
	{Name: "brew", Binary: "brew", Install: []string{"brew", "install"}},
}

var lookPathFn = exec.LookPath

// Known returns every supported manager in preference order.
func Known() []Manager {
	out := make([]Manager, len(known))
	copy(out, known)
	return out
}

// Names returns the names of every supported manager.
func Names() []string {
	names := make([]string, len(known))
	for i, m := range known {
		names[i] = m.Name
	}
	return names
}

// Lookup finds a manager by name, ignoring case.
func Lookup(name string) (Manager, bool) {
	name = strings.TrimSpace(name)
	for _, m := range known {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return Manager{}, false
}

// Available reports whether the manager's binary is on $PATH.
func (m Manager) Available() bool {
	if m.Binary == "" {
		return false
	}
	_, err := lookPathFn(m.Binary)
	return err == nil
}

// Detect returns the managers whose binary is on $PATH, in preference order.
func Detect() []Manager {
	var found []Manager
	for _, m := range known {
		if m.Available() {
			found = append(found, m)
		}
	}
	return found
}

// IsZero reports whether m is the empty manager.
func (m Manager) IsZero() bool {
	return m.Name == ""
}

// Command returns the shell command that would install pkgs. It is empty when
// there is nothing to install or no manager is set.
func (m Manager) Command(pkgs []string) string {
	if m.IsZero() || len(pkgs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m.Install)+len(pkgs))
	parts = append(parts, m.Install...)
	parts = append(parts, pkgs...)
	return strings.Join(parts, " ")
}

// NameNone disables the install command.
const NameNone = "none"

// ErrUnknown is returned for a manager name that is not supported.
var ErrUnknown = errors.New("unknown package manager")

// Resolve turns a configured name into a manager. An empty name or "auto"
// picks the first manager found on $PATH; "none" yields the zero manager.
func Resolve(name string) (Manager, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		if found := Detect(); len(found) > 0 {
			return found[0], nil
		}
		return Manager{}, nil
	case NameNone:
		return Manager{}, nil
	}
	mgr, ok := Lookup(name)
	if !ok {
		return Manager{}, fmt.Errorf("%w %q", ErrUnknown, name)
	}
	return mgr, nil
}
