package vcs

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/dimasma0305/linearcli/internal/linearcli/errors"
)

// initRepo creates a git repository with one commit so branches can be created
func initRepo(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping git integration test in short mode")
	}
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	run := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
			"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com",
		)
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v failed: %v\n%s", args, err, out)
		}
	}
	run("init", "-q")
	run("commit", "-q", "--allow-empty", "-m", "init")
	return dir
}

func currentBranch(t *testing.T, dir string) string {
	t.Helper()
	cmd := exec.Command("git", "rev-parse", "--abbrev-ref", "HEAD")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("rev-parse failed: %v", err)
	}
	return strings.TrimSpace(string(out))
}

func newTestGit(dir string) (*Git, *bytes.Buffer) {
	var out bytes.Buffer
	return &Git{Binary: "git", Dir: dir, Stdout: &out, Stderr: &out}, &out
}

func TestNewGit(t *testing.T) {
	g := NewGit("")
	if g.Binary != "git" {
		t.Errorf("Binary = %q, want git", g.Binary)
	}
	if g.Stdin != os.Stdin || g.Stdout != os.Stdout || g.Stderr != os.Stderr {
		t.Error("NewGit() should inherit the standard streams")
	}
	if NewGit("/opt/git").Binary != "/opt/git" {
		t.Error("NewGit() should keep a custom binary")
	}
}

func TestCheckoutNewBranch(t *testing.T) {
	dir := initRepo(t)
	g, out := newTestGit(dir)

	if err := g.CheckoutNewBranch(context.Background(), "eng-42-add-retry-logic"); err != nil {
		t.Fatalf("CheckoutNewBranch() failed: %v\n%s", err, out.String())
	}
	if got := currentBranch(t, dir); got != "eng-42-add-retry-logic" {
		t.Errorf("current branch = %q, want %q", got, "eng-42-add-retry-logic")
	}
	if !strings.Contains(out.String(), "eng-42-add-retry-logic") {
		t.Errorf("git output should be streamed through, got %q", out.String())
	}
}

func TestCheckoutNewBranch_AlreadyExists(t *testing.T) {
	dir := initRepo(t)
	g, _ := newTestGit(dir)

	if err := g.CheckoutNewBranch(context.Background(), "feature"); err != nil {
		t.Fatal(err)
	}
	err := g.CheckoutNewBranch(context.Background(), "feature")
	if err == nil {
		t.Fatal("expected error when branch already exists")
	}
	if errors.KindOf(err) != errors.KindSubprocess {
		t.Errorf("KindOf() = %v, want %v", errors.KindOf(err), errors.KindSubprocess)
	}
}

func TestCheckoutNewBranch_NameIsNotShellInterpreted(t *testing.T) {
	dir := initRepo(t)
	g, _ := newTestGit(dir)

	// Rejected by git as an invalid ref, never executed by a shell.
	err := g.CheckoutNewBranch(context.Background(), "x; touch pwned")
	if err == nil {
		t.Fatal("expected git to reject the branch name")
	}
	if _, statErr := os.Stat(dir + "/pwned"); statErr == nil {
		t.Fatal("branch name was interpreted by a shell")
	}
}

func TestCheckoutNewBranch_EmptyName(t *testing.T) {
	g, _ := newTestGit(t.TempDir())
	if err := g.CheckoutNewBranch(context.Background(), ""); errors.KindOf(err) != errors.KindSubprocess {
		t.Errorf("CheckoutNewBranch(\"\") = %v, want subprocess error", err)
	}
}

func TestCheckoutNewBranch_MissingBinary(t *testing.T) {
	g, _ := newTestGit(t.TempDir())
	g.Binary = "definitely-not-a-git-binary"

	err := g.CheckoutNewBranch(context.Background(), "feature")
	if errors.KindOf(err) != errors.KindSubprocess {
		t.Errorf("CheckoutNewBranch() = %v, want subprocess error", err)
	}
}
