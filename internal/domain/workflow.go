package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"connlint.dev/pkg/connlint/internal/adapter"
	"connlint.dev/pkg/connlint/internal/controller"
	"connlint.dev/pkg/connlint/internal/domain/rules"
	m "connlint.dev/pkg/connlint/internal/model"
)

// ErrLintFailed is returned by Check when at least one diagnostic was reported.
var ErrLintFailed = errors.New("lint failed")

// Step output values published to the CI host.
const (
	outputMessageKey = "message"
	passedMessage    = "Lint passed"
	failedMessage    = "Lint failed"
)

// LoadArgs describes how the file set is resolved.
type LoadArgs struct {
	Root    m.Path
	Pattern string
	Ignore  []string
	Threads int
}

// CheckArgs contains the arguments of a lint run.
type CheckArgs struct {
	LoadArgs

	// PullRequest receives the markdown report when the run fails. Nil disables commenting.
	PullRequest *adapter.PullRequestRef
}

// Workflow defines the lint workflow driven by the CLI.
type Workflow interface {
	Check(ctx context.Context, args CheckArgs) error
	Files(ctx context.Context, args LoadArgs) error
	Rules(ctx context.Context) error
	LoadFileSet(ctx context.Context, args LoadArgs) (m.FileSet, error)
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ActionsAdapter
	controller.UI
	Engine

	github adapter.GitHubAdapter
}

// NewWorkflow creates a new Workflow. github may be nil when no token is configured.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	actionsAdapter adapter.ActionsAdapter,
	githubAdapter adapter.GitHubAdapter,
	ui controller.UI,
	engine Engine,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ActionsAdapter:  actionsAdapter,
		UI:              ui,
		Engine:          engine,
		github:          githubAdapter,
	}
}

func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	files, err := w.LoadFileSet(ctx, args.LoadArgs)
	if err != nil {
		return fmt.Errorf("load files: %w", err)
	}

	result := w.Run(ctx, files)

	if err := w.DisplayResult(ctx, result); err != nil {
		slog.Error("Failed to display result", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	if result.Passed() {
		if err := w.SetOutput(ctx, outputMessageKey, passedMessage); err != nil {
			slog.Error("Failed to set step output", "error", err)
			return fmt.Errorf("set step output: %w", err)
		}

		return nil
	}

	slog.Info("Lint failed", "files", result.Files, "reported", result.Diagnostics.Len())

	errs := []error{ErrLintFailed}

	if args.PullRequest != nil {
		if err := w.comment(ctx, *args.PullRequest, result); err != nil {
			errs = append(errs, err)
		}
	}

	if err := w.Fail(ctx, failedMessage); err != nil {
		slog.Error("Failed to report failure to CI host", "error", err)
		errs = append(errs, fmt.Errorf("report failure: %w", err))
	}

	return errors.Join(errs...)
}

func (w *workflow) comment(ctx context.Context, ref adapter.PullRequestRef, result m.Result) error {
	if w.github == nil {
		return fmt.Errorf("comment on %s: %w", ref, adapter.ErrMissingToken)
	}

	if err := w.github.CommentOnPullRequest(ctx, ref, controller.RenderMarkdown(result)); err != nil {
		slog.Error("Failed to comment on pull request", "pullRequest", ref.String(), "error", err)
		return fmt.Errorf("comment on pull request: %w", err)
	}

	slog.Info("Posted lint report", "pullRequest", ref.String())

	return nil
}

func (w *workflow) Files(ctx context.Context, args LoadArgs) error {
	files, err := w.LoadFileSet(ctx, args)
	if err != nil {
		return fmt.Errorf("load files: %w", err)
	}

	return w.DisplayFiles(ctx, files)
}

func (w *workflow) Rules(ctx context.Context) error {
	return w.DisplayRules(ctx, rules.Describe(w.Engine.Rules()))
}

// LoadFileSet resolves the pattern under root, drops ignored paths and reads
// every remaining file. Reads run on up to args.Threads goroutines; the set
// keeps glob order.
func (w *workflow) LoadFileSet(ctx context.Context, args LoadArgs) (m.FileSet, error) {
	root := args.Root
	if root == "" {
		root = "."
	}

	info, err := w.FileInfo(ctx, root)
	if err != nil {
		slog.Error("Failed to stat root", "root", root, "error", err)
		return m.FileSet{}, fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		return m.FileSet{}, fmt.Errorf("root path %s is not a directory", root)
	}

	paths, err := w.Glob(ctx, root, args.Pattern)
	if err != nil {
		slog.Error("Failed to resolve pattern", "root", root, "pattern", args.Pattern, "error", err)
		return m.FileSet{}, err
	}

	paths, err = filterIgnored(paths, args.Ignore)
	if err != nil {
		return m.FileSet{}, err
	}

	files := make([]m.SourceFile, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(args.Threads, 1))

	for i, path := range paths {
		group.Go(func() error {
			content, err := w.ReadFile(groupCtx, root, path)
			if err != nil {
				slog.Error("Failed to read file", "path", path, "error", err)
				return fmt.Errorf("read %s: %w", path, err)
			}

			files[i] = m.SourceFile{Path: path, Content: string(content)}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return m.FileSet{}, err
	}

	slog.Debug("Loaded file set", "root", root, "pattern", args.Pattern, "files", len(files))

	return m.NewFileSet(files...), nil
}

// filterIgnored drops paths equal to, or matching as a doublestar pattern,
// any ignore entry.
func filterIgnored(paths []m.Path, ignore []string) ([]m.Path, error) {
	if len(ignore) == 0 {
		return paths, nil
	}

	for _, pattern := range ignore {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid ignore pattern %q", pattern)
		}
	}

	kept := make([]m.Path, 0, len(paths))

	for _, path := range paths {
		if ignored(path, ignore) {
			slog.Debug("Ignoring file", "path", path)
			continue
		}

		kept = append(kept, path)
	}

	return kept, nil
}

func ignored(path m.Path, ignore []string) bool {
	for _, pattern := range ignore {
		if string(path) == pattern {
			return true
		}

		if ok, _ := doublestar.Match(pattern, string(path)); ok {
			return true
		}
	}

	return false
}
