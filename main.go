// Package main implements semtag, a CLI tool that finds the highest
// semantic-version tag in a git repository, asks which component to bump,
// and creates the successor tag.
package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	modsemver "golang.org/x/mod/semver"
	"golang.org/x/term"

	semtag "github.com/example/semtag/pkg"
	"github.com/example/semtag/pkg/log"
	"github.com/example/semtag/pkg/ui"
)

var (
	flagDebug  int
	flagForce  bool
	flagBump   string
	flagFilter string
	flagSeed   string
	flagYes    bool
	flagDryRun bool
)

var rootCmd = &cobra.Command{
	Use:   "semtag [workdir]",
	Short: "Bump the semantic-version tag of a git repository",
	Long: `semtag scans the tags of a git repository, picks the highest semantic
version among them, asks which component to bump (Major, Minor, or Patch),
and creates the resulting annotated tag at HEAD.

Tags that are not semantic versions are ignored. The new tag reuses the
prefix of the tag it succeeds (v1.2.0 begets v1.3.0). When the repository
has no semantic-version tags yet, semtag offers to seed an initial one.`,
	Args:         cobra.MaximumNArgs(1),
	Version:      Version,
	SilenceUsage: true,
	RunE:         run,
}

func main() {
	rootCmd.Flags().CountVarP(&flagDebug, "debug", "d", "increase log verbosity (repeatable)")
	rootCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "allow tagging on a branch other than master or main")
	rootCmd.Flags().StringVarP(&flagBump, "bump", "b", "", "bump kind (major|minor|patch); skips the interactive prompt")
	rootCmd.Flags().StringVar(&flagFilter, "filter", "", "only consider tags matching this version constraint (e.g. \"^1\")")
	rootCmd.Flags().StringVar(&flagSeed, "seed", "0.1.0", "version offered when the repository has no semantic-version tags")
	rootCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "create the tag without asking for confirmation")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "print the tag that would be created without creating it")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log.Init(flagDebug)

	dir, err := resolveWorkDir(args)
	if err != nil {
		return err
	}

	repo, err := semtag.OpenRepo(dir)
	if err != nil {
		return err
	}
	log.Info("repository location", "dir", repo.Dir())

	cfg, err := semtag.LoadConfig(repo.Dir())
	if err != nil {
		return err
	}

	if !flagForce {
		branch, err := repo.CurrentBranch()
		if err != nil {
			return err
		}
		if !slices.Contains(cfg.Branch.Allowed, branch) {
			return fmt.Errorf("branch %q is checked out, expected one of %v (use --force to override)", branch, cfg.Branch.Allowed)
		}
	}

	tags, err := repo.Tags()
	if err != nil {
		return err
	}

	var opts []semtag.ScanOption
	if expr := firstNonEmpty(flagFilter, cfg.Tag.Filter); expr != "" {
		c, err := semver.NewConstraint(expr)
		if err != nil {
			return fmt.Errorf("invalid filter %q: %w", expr, err)
		}
		opts = append(opts, semtag.WithFilter(c))
	}

	var newTag string
	latest, err := semtag.Scan(tags, opts...)
	switch {
	case errors.Is(err, semtag.ErrNoTags):
		seed, err := seedVersion(flagSeed)
		if err != nil {
			return err
		}
		newTag = cfg.Tag.Prefix + seed.String()
		log.Info("no semantic-version tags found", "seed", newTag)
	case err != nil:
		return err
	default:
		log.Info("last tagged version", "tag", latest.Raw, "version", latest.Version.String())

		kind, err := chooseBumpKind()
		if err != nil {
			return err
		}
		log.Debug("bumping", "kind", kind.String())

		next, err := semtag.Bump(latest.Version, kind)
		if err != nil {
			return err
		}
		newTag = semtag.FormatTag(latest.Raw, next)
	}

	if flagDryRun {
		fmt.Printf("Would create tag %s\n", newTag)
		return nil
	}

	if !flagYes {
		if !isTerminal(os.Stdin) {
			return errors.New("no terminal available for confirmation; pass --yes to skip it")
		}
		ok, err := ui.Confirm(fmt.Sprintf("Create new tag %s?", newTag), true)
		if err != nil {
			return err
		}
		if !ok {
			log.Info("aborting")
			return nil
		}
	}

	if err := repo.CreateTag(newTag, cfg.Tag.Message); err != nil {
		return err
	}
	color.Green("✓ Created tag %s", newTag)
	return nil
}

// chooseBumpKind honors --bump when given and prompts otherwise.
func chooseBumpKind() (semtag.Kind, error) {
	if flagBump != "" {
		return semtag.ParseKind(flagBump)
	}
	if !isTerminal(os.Stdin) {
		return 0, errors.New("no terminal available for the bump prompt; pass --bump instead")
	}
	return ui.AskBumpKind()
}

// resolveWorkDir returns the positional workdir argument, defaulting to the
// current working directory.
func resolveWorkDir(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("could not read current working directory: %w", err)
	}
	return dir, nil
}

// seedVersion validates and parses the --seed flag.
func seedVersion(s string) (semtag.Version, error) {
	canonical := s
	if !strings.HasPrefix(canonical, "v") {
		canonical = "v" + canonical
	}
	if !modsemver.IsValid(canonical) {
		return semtag.Version{}, fmt.Errorf("seed version %q is not valid semver", s)
	}
	return semtag.ParseTag(s)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
