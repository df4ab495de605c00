// Package vcs runs the git executable for branch checkout
package vcs

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/dimasma0305/linearcli/internal/linearcli/errors"
	"github.com/dimasma0305/linearcli/internal/log"
)

// Brancher creates and switches to a new local branch.
type Brancher interface {
	CheckoutNewBranch(ctx context.Context, name string) error
}

// Git shells out to the git executable. Output is streamed straight to the
// configured writers so git's own messages stay visible.
type Git struct {
	Binary string
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewGit returns a Git that inherits the process's standard streams.
func NewGit(binary string) *Git {
	if binary == "" {
		binary = "git"
	}
	return &Git{
		Binary: binary,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// CheckoutNewBranch runs `git checkout -b <name>` and blocks until it exits.
// The name is passed as a single argument, never through a shell.
func (g *Git) CheckoutNewBranch(ctx context.Context, name string) error {
	if name == "" {
		return errors.New(errors.KindSubprocess, "tracker returned an empty branch name")
	}

	log.Debug("Running %s checkout -b %s", g.Binary, name)

	//nolint:gosec // G204: Binary comes from user config, branch name is a single argv entry
	cmd := exec.CommandContext(ctx, g.Binary, "checkout", "-b", name)
	cmd.Dir = g.Dir
	cmd.Stdin = g.Stdin
	cmd.Stdout = g.Stdout
	cmd.Stderr = g.Stderr

	if err := cmd.Run(); err != nil {
		return &errors.Error{
			Kind:    errors.KindSubprocess,
			Message: fmt.Sprintf("git checkout -b %s failed: %v", name, err),
			Err:     err,
		}
	}
	return nil
}
