package semtag

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/example/semtag/pkg/log"
)

// Repo is a handle on a local git repository. All operations shell out to
// the git binary; semtag never links a git library.
type Repo struct {
	dir string
}

// OpenRepo verifies that git is available and that dir is inside a work
// tree, returning a handle for tag operations.
func OpenRepo(dir string) (*Repo, error) {
	if err := checkGit(); err != nil {
		return nil, err
	}
	r := &Repo{dir: dir}
	if _, err := r.git("rev-parse", "--is-inside-work-tree"); err != nil {
		return nil, fmt.Errorf("not a git repository: %s", dir)
	}
	return r, nil
}

// Dir returns the directory the repository was opened at.
func (r *Repo) Dir() string {
	return r.dir
}

// Tags returns every tag name in the repository, in git's listing order.
func (r *Repo) Tags() ([]string, error) {
	out, err := r.git("tag", "--list")
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// CurrentBranch returns the short name of the checked-out branch.
func (r *Repo) CurrentBranch() (string, error) {
	out, err := r.git("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("reading current branch: %w", err)
	}
	return out, nil
}

// CreateTag creates an annotated tag with the given message at HEAD.
func (r *Repo) CreateTag(name, message string) error {
	if _, err := r.git("tag", "-a", name, "-m", message); err != nil {
		return fmt.Errorf("creating tag %s: %w", name, err)
	}
	log.Debug("created annotated tag", "tag", name)
	return nil
}

// git runs a git subcommand in the repository directory and returns its
// trimmed stdout. Failures include git's stderr detail.
func (r *Repo) git(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return "", fmt.Errorf("git %s failed: %v, detail: %s", args[0], err, detail)
		}
		return "", fmt.Errorf("git %s failed: %v", args[0], err)
	}
	return strings.TrimSpace(string(out)), nil
}

// checkGit verifies that git is available on the system.
func checkGit() error {
	if err := exec.Command("git", "--version").Run(); err != nil {
		return errors.New("git is not available on the system")
	}
	return nil
}
