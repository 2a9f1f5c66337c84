package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"surgemin/internal/compile"
	"surgemin/internal/diffview"
	"surgemin/internal/project"
	"surgemin/internal/prune"
	"surgemin/internal/unused"
	"surgemin/internal/vcs"
)

var (
	flagFix          bool
	flagAllowDirty   bool
	flagAllowStaged  bool
	flagAllowNoVCS   bool
	flagManifestPath string
	flagWorkspace    bool
	flagExclude      []string
	flagPackages     []string
	flagStrategy     string
	flagJobs         int
	flagSurge        string
)

func init() {
	f := rootCmd.Flags()
	f.BoolVar(&flagFix, "fix", false, "apply the deletions instead of only showing them")
	f.BoolVar(&flagAllowDirty, "allow-dirty", false, "allow --fix with unstaged changes in the working copy")
	f.BoolVar(&flagAllowStaged, "allow-staged", false, "allow --fix with staged changes in the working copy")
	f.BoolVar(&flagAllowNoVCS, "allow-no-vcs", false, "allow --fix without any version control")
	f.StringVar(&flagManifestPath, "manifest-path", "", "path to surge.toml (default: search upward from the current directory)")
	f.BoolVar(&flagWorkspace, "workspace", false, "prune every workspace member")
	f.StringArrayVar(&flagExclude, "exclude", nil, "glob pattern of package names to skip (with --workspace, repeatable)")
	f.StringArrayVar(&flagPackages, "package", nil, "prune only the named package (repeatable)")
	f.StringVar(&flagStrategy, "strategy", "structural", "span resolution strategy (structural|lexical)")
	f.IntVar(&flagJobs, "jobs", 0, "number of parallel workers (0 = one per CPU)")
	f.StringVar(&flagSurge, "surge", "", "surge compiler executable (default: surge from PATH)")
}

// pruneConfig is everything runPrune needs, validated up front. Working
// directory state is captured here once; nothing below reads it again.
type pruneConfig struct {
	manifest string
	mode     project.Mode
	strategy prune.Strategy
}

func buildConfig() (pruneConfig, error) {
	var cfg pruneConfig

	// Противоречивые флаги отбрасываем до запуска компилятора.
	if flagWorkspace && len(flagPackages) > 0 {
		return cfg, errors.New("--workspace and --package are mutually exclusive")
	}
	switch {
	case flagWorkspace:
		cfg.mode = project.ModeWorkspace
	case len(flagPackages) > 0:
		cfg.mode = project.ModePackages
	default:
		cfg.mode = project.ModeRoot
	}
	if len(flagExclude) > 0 && cfg.mode != project.ModeWorkspace {
		return cfg, errors.New("--exclude requires --workspace")
	}

	strategy, err := prune.ParseStrategy(flagStrategy)
	if err != nil {
		return cfg, err
	}
	cfg.strategy = strategy

	cfg.manifest = flagManifestPath
	if cfg.manifest == "" {
		wd, err := os.Getwd()
		if err != nil {
			return cfg, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		path, ok, err := project.FindSurgeToml(wd)
		if err != nil {
			return cfg, err
		}
		if !ok {
			return cfg, errors.New("no surge.toml found; pass --manifest-path")
		}
		cfg.manifest = path
	}
	return cfg, nil
}

func runPrune(cmd *cobra.Command, args []string) error {
	colorFlag, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}
	colorMode, err := diffview.ParseColorMode(colorFlag)
	if err != nil {
		return err
	}
	colorMode.Apply()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	targets, err := project.Resolve(project.Options{
		ManifestPath: cfg.manifest,
		Mode:         cfg.mode,
		Exclude:      flagExclude,
		Packages:     flagPackages,
	})
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return errors.New("no packages selected: --exclude patterns matched every workspace member")
	}
	root := targets[0].Root
	if cfg.mode != project.ModeRoot {
		// Компилятор гоняем из корневого манифеста, он видит весь workspace.
		m, err := project.LoadManifest(cfg.manifest)
		if err != nil {
			return err
		}
		root = m.Root
	}

	ctx := context.Background()
	var msgs []compile.Message
	err = compile.Check(ctx, compile.CheckOptions{Dir: root, Surge: flagSurge}, func(m compile.Message) error {
		msgs = append(msgs, m)
		return nil
	})
	if err != nil {
		return err
	}

	diags := unused.Collect(msgs, project.Names(targets))
	engine := prune.NewEngine(prune.Options{
		Strategy: cfg.strategy,
		BaseDir:  root,
		Jobs:     flagJobs,
	})
	changes, err := engine.Run(ctx, diags)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(changes) == 0 {
		fmt.Fprintln(out, "nothing to prune: no removable dead code found")
		return nil
	}

	if !flagFix {
		printer := diffview.NewPrinter(out)
		for _, ch := range changes {
			if err := printer.File(ch.Path, ch.Original, ch.Proposed); err != nil {
				return err
			}
		}
		fmt.Fprintf(out, "%d file(s) would change; rerun with --fix to apply\n", len(changes))
		return nil
	}

	status, err := vcs.Check(ctx, root)
	if err != nil {
		return err
	}
	gateErr := vcs.Gate(status, vcs.Allow{
		Dirty:  flagAllowDirty,
		Staged: flagAllowStaged,
		NoVCS:  flagAllowNoVCS,
	})
	if gateErr != nil {
		return gateErr
	}

	if err := prune.Commit(changes); err != nil {
		return err
	}
	fmt.Fprintf(out, "pruned dead code in %d file(s)\n", len(changes))
	return nil
}
