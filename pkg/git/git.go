package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/fioncat/batify/pkg/term"
)

const defaultBinary = "git"

type Git struct {
	binary string

	path string

	quiet bool
}

func New() *Git {
	return &Git{binary: defaultBinary}
}

func WithPath(path string) *Git {
	return &Git{binary: defaultBinary, path: path}
}

// WithBinary is mostly used to point at a git executable outside PATH.
func (g *Git) WithBinary(binary string) *Git {
	g.binary = binary
	return g
}

// Quiet captures stderr instead of forwarding it to the terminal.
func (g *Git) Quiet() {
	g.quiet = true
}

func (g *Git) Output(a ...string) (string, error) {
	var args []string
	if g.path != "" {
		args = append(args, "-C", g.path)
	}
	args = append(args, a...)

	binary := g.binary
	if binary == "" {
		binary = defaultBinary
	}

	var stderr bytes.Buffer
	var stdout bytes.Buffer
	cmd := exec.Command(binary, args...)
	cmd.Stdout = &stdout
	if g.quiet || term.Mute {
		cmd.Stderr = &stderr
	} else {
		term.PrintInfo("git %s", strings.Join(a, " "))
		cmd.Stderr = term.Stderr
	}

	err := cmd.Run()
	if err != nil {
		return "", fmt.Errorf("git command %q failed: %w, stdout: %q, stderr: %q",
			strings.Join(args, " "), err, stdout.String(), stderr.String())
	}

	return stdout.String(), nil
}
