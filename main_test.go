package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestMain triggers the CLI as a subprocess when GO_HELPER_PROCESS is set.
func TestMain(m *testing.M) {
	if os.Getenv("GO_HELPER_PROCESS") == "1" {
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

// runCLI runs the CLI in helper process mode and returns its combined output.
func runCLI(args ...string) (string, error) {
	cmd := exec.Command(os.Args[0], args...)
	cmd.Env = append(os.Environ(), "GO_HELPER_PROCESS=1")
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// setupRepo creates a git repository with one commit and the given tags.
func setupRepo(t *testing.T, tags ...string) (string, func(args ...string) string) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not available on the system")
	}
	dir := t.TempDir()
	runGit := func(args ...string) string {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		if err != nil {
			t.Fatalf("git %v failed: %v\n%s", args, err, out)
		}
		return string(out)
	}
	runGit("init")
	runGit("config", "user.email", "test@example.com")
	runGit("config", "user.name", "Test User")
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# test\n"), 0644); err != nil {
		t.Fatal(err)
	}
	runGit("add", "README.md")
	runGit("commit", "-m", "initial commit")
	for _, tag := range tags {
		runGit("tag", tag)
	}
	return dir, runGit
}

func TestCLIHelp(t *testing.T) {
	out, err := runCLI("--help")
	if err != nil {
		t.Fatalf("--help failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "semtag scans the tags") {
		t.Errorf("expected help output, got:\n%s", out)
	}
}

func TestCLIVersionFlag(t *testing.T) {
	out, err := runCLI("--version")
	if err != nil {
		t.Fatalf("--version failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, Version) {
		t.Errorf("expected CLI version in output, got:\n%s", out)
	}
}

func TestCLIUnknownBumpKind(t *testing.T) {
	dir, _ := setupRepo(t, "v1.0.0")
	out, err := runCLI("--bump", "premajor", "--dry-run", dir)
	if err == nil {
		t.Errorf("expected failure for unknown bump kind, got:\n%s", out)
	}
	if !strings.Contains(out, "unknown bump kind") {
		t.Errorf("expected unknown bump kind error, got:\n%s", out)
	}
}

func TestCLIDryRun(t *testing.T) {
	dir, runGit := setupRepo(t, "v1.0.0", "v1.2.0", "v1.1.5", "not-a-version")

	out, err := runCLI("--bump", "minor", "--dry-run", dir)
	if err != nil {
		t.Fatalf("dry run failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Would create tag v1.3.0") {
		t.Errorf("expected dry-run tag v1.3.0, got:\n%s", out)
	}
	if strings.Contains(runGit("tag", "--list"), "v1.3.0") {
		t.Error("dry run created a tag")
	}
}

func TestCLICreatesTag(t *testing.T) {
	dir, runGit := setupRepo(t, "v1.2.0")

	out, err := runCLI("--bump", "patch", "--yes", dir)
	if err != nil {
		t.Fatalf("bump failed: %v\n%s", err, out)
	}
	if !strings.Contains(runGit("tag", "--list"), "v1.2.1") {
		t.Errorf("tag v1.2.1 was not created, output:\n%s", out)
	}
}

func TestCLISeedsEmptyRepo(t *testing.T) {
	dir, _ := setupRepo(t)

	out, err := runCLI("--dry-run", dir)
	if err != nil {
		t.Fatalf("seed dry run failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Would create tag v0.1.0") {
		t.Errorf("expected seed tag v0.1.0, got:\n%s", out)
	}

	out, err = runCLI("--seed", "2.0.0", "--dry-run", dir)
	if err != nil {
		t.Fatalf("seed dry run failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Would create tag v2.0.0") {
		t.Errorf("expected seed tag v2.0.0, got:\n%s", out)
	}
}

func TestCLIFilterFlag(t *testing.T) {
	dir, _ := setupRepo(t, "v1.2.0", "v2.4.0")

	out, err := runCLI("--filter", "^1", "--bump", "patch", "--dry-run", dir)
	if err != nil {
		t.Fatalf("filtered dry run failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Would create tag v1.2.1") {
		t.Errorf("expected filter to pin the 1.x line, got:\n%s", out)
	}
}

func TestCLIBranchGuard(t *testing.T) {
	dir, runGit := setupRepo(t, "v1.0.0")
	runGit("checkout", "-b", "feature/x")

	out, err := runCLI("--bump", "patch", "--dry-run", dir)
	if err == nil {
		t.Errorf("expected branch guard failure, got:\n%s", out)
	}
	if !strings.Contains(out, "feature/x") {
		t.Errorf("expected the branch name in the error, got:\n%s", out)
	}

	out, err = runCLI("--force", "--bump", "patch", "--dry-run", dir)
	if err != nil {
		t.Fatalf("--force run failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Would create tag v1.0.1") {
		t.Errorf("expected forced dry run to proceed, got:\n%s", out)
	}
}

func TestSeedVersion(t *testing.T) {
	v, err := seedVersion("0.1.0")
	if err != nil {
		t.Fatalf("seedVersion returned error: %v", err)
	}
	if v.String() != "0.1.0" {
		t.Errorf("seedVersion(\"0.1.0\") = %s", v)
	}
	if _, err := seedVersion("not-a-version"); err == nil {
		t.Error("seedVersion accepted an invalid version")
	}
}
