// Package app implements the application layer for autoslice.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/autoslice/internal/core/domain"
	"go.trai.ch/autoslice/internal/core/ports"
	"go.trai.ch/autoslice/internal/engine/slicer"
	"go.trai.ch/zerr"
)

// RunOptions carries the command-line selections for one run.
type RunOptions struct {
	// Package is the seed package name.
	Package string

	// Depends expands the seed to its direct dependencies.
	Depends bool

	// FullDepends expands the seed to its transitive dependency closure.
	// Mutually exclusive with Depends.
	FullDepends bool

	// Slice generates slice definition proposals for every expanded
	// package; without it the dependency modes just print the list.
	Slice bool

	// All ignores the curated index and proposes even covered packages.
	All bool

	// Release is the curated-index release tag, e.g. "ubuntu-24.04".
	Release string

	// Policy is the interdependency policy. The zero value selects the
	// built-in default.
	Policy domain.Policy
}

// PackageStatus is the outcome of one package in a run.
type PackageStatus string

const (
	// StatusProposed indicates a definition was generated.
	StatusProposed PackageStatus = "Proposed"
	// StatusSkipped indicates the package was already curated.
	StatusSkipped PackageStatus = "Skipped"
	// StatusFailed indicates the package could not be processed.
	StatusFailed PackageStatus = "Failed"
)

// App drives a run: dependency expansion, curated skip, the per-package
// pipeline and the interactive pause between packages.
type App struct {
	slicer    *slicer.Slicer
	curated   ports.CuratedIndex
	renderer  ports.DefinitionRenderer
	confirmer ports.Confirmer
	ws        ports.Workspace
	logger    ports.Logger
	out       io.Writer
}

// New creates a new App writing documents to stdout.
func New(s *slicer.Slicer, curated ports.CuratedIndex, renderer ports.DefinitionRenderer, confirmer ports.Confirmer, ws ports.Workspace, logger ports.Logger) *App {
	return &App{
		slicer:    s,
		curated:   curated,
		renderer:  renderer,
		confirmer: confirmer,
		ws:        ws,
		logger:    logger,
		out:       os.Stdout,
	}
}

// SetOutput redirects document output. Used by tests.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// Run executes one invocation. Errors local to one package are reported
// and that package is skipped; the run continues and reports
// domain.ErrRunHadFailures at the end so the process exits non-zero.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	// The workspace outlives every per-package failure but never the run,
	// usage errors included.
	defer func() {
		if err := a.ws.Close(); err != nil {
			a.logger.Error(err)
		}
	}()

	if opts.Depends && opts.FullDepends {
		return domain.ErrConflictingModes
	}

	deps, err := a.expandDependencies(ctx, opts)
	if err != nil {
		return err
	}

	if !opts.Slice {
		if opts.Depends || opts.FullDepends {
			fmt.Fprintln(a.out, strings.Join(deps, " "))
		}
		return nil
	}

	return a.sliceAll(ctx, append(deps, opts.Package), opts)
}

func (a *App) expandDependencies(ctx context.Context, opts RunOptions) ([]string, error) {
	switch {
	case opts.Depends:
		return a.slicer.Grapher().Direct(ctx, opts.Package)
	case opts.FullDepends:
		return a.slicer.Grapher().Transitive(ctx, opts.Package)
	default:
		return nil, nil
	}
}

func (a *App) sliceAll(ctx context.Context, queue []string, opts RunOptions) error {
	policy := opts.Policy
	if policy.Slices == nil {
		policy = domain.DefaultPolicy()
	}

	curated, err := a.curatedPackages(ctx, opts)
	if err != nil {
		return err
	}

	statuses := make(map[PackageStatus]int)
	for i, pkg := range queue {
		if err := ctx.Err(); err != nil {
			return err
		}

		statuses[a.slicePackage(ctx, pkg, opts, curated, policy)]++

		if i < len(queue)-1 {
			proceed, err := a.pause(queue[i+1])
			if err != nil {
				return err
			}
			if !proceed {
				break
			}
		}
	}

	a.logger.Info(fmt.Sprintf("run complete: %d proposed, %d skipped, %d failed",
		statuses[StatusProposed], statuses[StatusSkipped], statuses[StatusFailed]))

	if statuses[StatusFailed] > 0 {
		return zerr.With(domain.ErrRunHadFailures, "failed", statuses[StatusFailed])
	}
	return nil
}

func (a *App) curatedPackages(ctx context.Context, opts RunOptions) (map[string]bool, error) {
	if opts.All {
		return nil, nil
	}
	curated, err := a.curated.Packages(ctx, opts.Release)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read curated index")
	}
	return curated, nil
}

func (a *App) slicePackage(ctx context.Context, pkg string, opts RunOptions, curated map[string]bool, policy domain.Policy) PackageStatus {
	if curated[pkg] {
		a.logger.Info("package " + pkg + " already sliced in " + opts.Release)
		return StatusSkipped
	}

	def, err := a.slicer.Propose(ctx, pkg, policy)
	if err != nil {
		// A lookup miss is not a failure: the package just cannot be
		// proposed, the run stays clean.
		if errors.Is(err, domain.ErrPackageNotFound) {
			a.logger.Info("package " + pkg + " has no candidate binary, skipping")
			return StatusSkipped
		}
		a.logger.Error(err)
		return StatusFailed
	}

	fmt.Fprintf(a.out, "THE SDF-LIKE SLICE DEFINITION FOR %s:\n", pkg)
	fmt.Fprintln(a.out, "=====BEGIN=====")
	if err := a.renderer.Render(a.out, def); err != nil {
		a.logger.Error(err)
		return StatusFailed
	}
	fmt.Fprintln(a.out, "======END======")
	return StatusProposed
}

// pause is the interactive confirmation between packages. It reports
// whether the run should proceed to the next package.
func (a *App) pause(next string) (bool, error) {
	decision, err := a.confirmer.Continue(next)
	if err != nil {
		return false, err
	}
	switch decision {
	case ports.DecisionContinue:
		return true, nil
	case ports.DecisionQuit:
		return false, nil
	default:
		a.logger.Warn("invalid input")
		return false, nil
	}
}
