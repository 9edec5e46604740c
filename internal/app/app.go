// Package app implements the application layer for press.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/agnivade/levenshtein"
	"go.trai.ch/press/internal/adapters/cas"     //nolint:depguard // Wired in app layer
	"go.trai.ch/press/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/press/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/press/internal/adapters/pages"   //nolint:depguard // Wired in app layer
	"go.trai.ch/press/internal/adapters/tmpl"    //nolint:depguard // Wired in app layer
	"go.trai.ch/press/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/press/internal/core/domain"
	"go.trai.ch/press/internal/core/ports"
	"go.trai.ch/press/internal/engine/compose"
	"go.trai.ch/press/internal/engine/renderer"
	"go.trai.ch/zerr"
)

// debounceWindow groups rapid file system events into a single rebuild.
const debounceWindow = 200 * time.Millisecond

// App represents the main application logic.
type App struct {
	loader   ports.SiteLoader
	hasher   ports.Hasher
	resolver ports.InputResolver
	urls     ports.URLResolver
	tracer   ports.Tracer
	logger   ports.Logger
	settings domain.Settings
}

// New creates a new App instance.
func New(
	loader ports.SiteLoader,
	hasher ports.Hasher,
	resolver ports.InputResolver,
	urls ports.URLResolver,
	tracer ports.Tracer,
	log ports.Logger,
	settings domain.Settings,
) *App {
	return &App{
		loader:   loader,
		hasher:   hasher,
		resolver: resolver,
		urls:     urls,
		tracer:   tracer,
		logger:   log,
		settings: settings,
	}
}

// session bundles the adapters rooted at one site. Watch mode reopens it
// when the manifest itself changes.
type session struct {
	reader   ports.PageReader
	engine   ports.TemplateEngine
	writer   ports.OutputWriter
	verifier ports.Verifier
	store    ports.BuildInfoStore
}

func (a *App) newSession(site *domain.Site) (*session, error) {
	store, err := cas.NewStore(a.storePath(site))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open build info store")
	}

	return &session{
		reader:   pages.NewReader(site.Root),
		engine:   tmpl.NewEngine(site.Root),
		writer:   fs.NewWriter(site.OutputDir()),
		verifier: fs.NewVerifier(),
		store:    store,
	}, nil
}

// BuildRequest describes one build invocation.
type BuildRequest struct {
	// ConfigPath is the manifest to build. Empty means discovering one from
	// the working directory upward.
	ConfigPath string

	// Targets restricts the build to the named pages. Empty means all pages.
	Targets []string

	// Force bypasses the build cache.
	Force bool

	// Watch keeps the process alive, rebuilding whenever sources change.
	Watch bool

	// Jobs caps how many pages render at once. Zero falls back to settings.
	Jobs int
}

// Build renders the site described by the manifest and, when requested,
// keeps watching its sources afterwards.
func (a *App) Build(ctx context.Context, req BuildRequest) error {
	manifest, err := a.manifestPath(req.ConfigPath)
	if err != nil {
		return err
	}

	site, err := a.loader.Load(manifest)
	if err != nil {
		return zerr.Wrap(err, "failed to load site")
	}

	sess, err := a.newSession(site)
	if err != nil {
		return err
	}

	err = a.render(ctx, site, sess, req)
	if !req.Watch {
		return err
	}
	if err != nil {
		// Watch mode outlives a failed build; the next change may fix it.
		a.logger.Error(err)
	}

	return a.watch(ctx, manifest, site, sess, req)
}

// render composes the site into units and drives them through the renderer.
func (a *App) render(ctx context.Context, site *domain.Site, sess *session, req BuildRequest) error {
	composer := compose.NewComposer(sess.reader, a.urls, a.resolver, sess.engine)
	units, err := composer.Compose(ctx, site)
	if err != nil {
		return zerr.Wrap(err, "failed to compose site")
	}

	if units, err = selectUnits(units, req.Targets); err != nil {
		return err
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = a.settings.Jobs
	}

	r := renderer.NewRenderer(sess.engine, a.hasher, sess.store, sess.verifier, sess.writer, a.tracer)
	return r.Render(ctx, site, units, renderer.Options{Jobs: jobs, Force: req.Force})
}

// watch rebuilds the site whenever files below its root change. Cancelling
// the context is the normal way out and reports no error.
func (a *App) watch(ctx context.Context, manifest string, site *domain.Site, sess *session, req BuildRequest) error {
	w, err := watcher.NewWatcher(filepath.Base(site.OutputDir()))
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	if err := w.Start(ctx, site.Root); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("watching %s", site.Root))

	rebuild := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(debounceWindow, func(paths []string) {
		select {
		case rebuild <- paths:
		case <-ctx.Done():
		}
	})

	go func() {
		for event := range w.Events() {
			debouncer.Add(event.Path)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-rebuild:
			site, sess = a.refresh(manifest, site, sess, paths)
			if err := a.render(ctx, site, sess, req); err != nil {
				a.logger.Error(err)
			}
		}
	}
}

// refresh invalidates the cached sources behind the changed paths. A manifest
// change reloads the whole site; if the reload fails the previous site stays
// in effect.
func (a *App) refresh(manifest string, site *domain.Site, sess *session, paths []string) (*domain.Site, *session) {
	reload := false
	for _, path := range paths {
		if path == manifest {
			reload = true
			continue
		}
		rel, err := filepath.Rel(site.Root, path)
		if err != nil {
			continue
		}
		page := domain.NewPagePath(filepath.ToSlash(rel))
		sess.reader.Invalidate(page)
		sess.engine.Invalidate(page)
	}

	if !reload {
		return site, sess
	}

	fresh, err := a.loader.Load(manifest)
	if err != nil {
		a.logger.Error(zerr.Wrap(err, "failed to reload site"))
		return site, sess
	}
	freshSess, err := a.newSession(fresh)
	if err != nil {
		a.logger.Error(err)
		return site, sess
	}
	return fresh, freshSess
}

// selectUnits narrows units down to the requested targets, in request order.
// No targets selects everything.
func selectUnits(units []domain.Unit, targets []string) ([]domain.Unit, error) {
	if len(targets) == 0 {
		return units, nil
	}

	byName := make(map[string]domain.Unit, len(units))
	names := make([]string, 0, len(units))
	for _, unit := range units {
		byName[unit.Name] = unit
		names = append(names, unit.Name)
	}

	seen := make(map[string]bool, len(targets))
	selected := make([]domain.Unit, 0, len(targets))
	for _, target := range targets {
		unit, ok := byName[target]
		if !ok {
			err := zerr.With(domain.ErrPageNotFound, "page", target)
			if match := closest(target, names); match != "" {
				err = zerr.With(err, "did_you_mean", match)
			}
			return nil, err
		}
		if seen[target] {
			continue
		}
		seen[target] = true
		selected = append(selected, unit)
	}

	return selected, nil
}

// closest returns the page name within edit distance three of the given
// name, or empty when nothing comes close.
func closest(name string, candidates []string) string {
	const maxDistance = 3

	best, bestDistance := "", maxDistance+1
	for _, candidate := range candidates {
		if d := levenshtein.ComputeDistance(name, candidate); d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	if bestDistance > maxDistance {
		return ""
	}
	return best
}

// CleanRequest selects which build artifacts Clean removes.
type CleanRequest struct {
	// ConfigPath is the manifest of the site to clean. Empty means discovery.
	ConfigPath string

	// Output removes the rendered output directory.
	Output bool

	// State removes the cached build state.
	State bool
}

// Clean removes generated artifacts. With nothing selected it removes both
// the rendered output and the build state.
func (a *App) Clean(_ context.Context, req CleanRequest) error {
	manifest, err := a.manifestPath(req.ConfigPath)
	if err != nil {
		return err
	}

	site, err := a.loader.Load(manifest)
	if err != nil {
		return zerr.Wrap(err, "failed to load site")
	}

	if !req.Output && !req.State {
		req.Output, req.State = true, true
	}

	var errs error
	remove := func(path string, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	if req.Output {
		remove(site.OutputDir(), "rendered output")
	}
	if req.State {
		remove(filepath.Dir(a.storePath(site)), "build info store")
	}

	return errs
}

// manifestPath resolves the manifest to operate on: the explicit path when
// given, otherwise the nearest manifest above the working directory.
func (a *App) manifestPath(explicit string) (string, error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", zerr.Wrap(err, "failed to resolve manifest path")
		}
		return abs, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve working directory")
	}
	return config.Discover(cwd)
}

// storePath returns the build state location, honoring the state_dir setting.
func (a *App) storePath(site *domain.Site) string {
	if a.settings.StateDir != "" {
		return filepath.Join(a.settings.StateDir, domain.StoreFileName)
	}
	return domain.DefaultStorePath(site.Root)
}
