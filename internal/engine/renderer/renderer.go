// Package renderer drives render units to their written outputs.
package renderer

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"go.trai.ch/press/internal/core/domain"
	"go.trai.ch/press/internal/core/ports"
	"go.trai.ch/press/internal/engine/compose"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Renderer renders units concurrently, skipping pages whose inputs and
// stored output are unchanged.
type Renderer struct {
	engine   ports.TemplateEngine
	hasher   ports.Hasher
	store    ports.BuildInfoStore
	verifier ports.Verifier
	writer   ports.OutputWriter
	tracer   ports.Tracer
}

// NewRenderer creates a new Renderer.
func NewRenderer(
	engine ports.TemplateEngine,
	hasher ports.Hasher,
	store ports.BuildInfoStore,
	verifier ports.Verifier,
	writer ports.OutputWriter,
	tracer ports.Tracer,
) *Renderer {
	return &Renderer{
		engine:   engine,
		hasher:   hasher,
		store:    store,
		verifier: verifier,
		writer:   writer,
		tracer:   tracer,
	}
}

// Options control a single render run.
type Options struct {
	// Jobs caps how many pages render at once. Zero means NumCPU.
	Jobs int
	// Force bypasses the build cache.
	Force bool
}

// Render renders every unit and reports all failures together. Pages are
// independent of each other, so one failing page never stops the others.
func (r *Renderer) Render(ctx context.Context, site *domain.Site, units []domain.Unit, opts Options) error {
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.NumCPU()
	}

	names := make([]string, len(units))
	for i, unit := range units {
		names[i] = unit.Name
	}
	r.tracer.EmitPlan(ctx, names)

	var g errgroup.Group
	g.SetLimit(opts.Jobs)

	var mu sync.Mutex
	var errs []error

	for _, unit := range units {
		g.Go(func() error {
			if err := r.renderUnit(ctx, site, unit, opts.Force); err != nil {
				mu.Lock()
				errs = append(errs, zerr.With(err, "page", unit.Name))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

func (r *Renderer) renderUnit(ctx context.Context, site *domain.Site, unit domain.Unit, force bool) error {
	ctx, span := r.tracer.Start(ctx, unit.Name)
	defer span.End()

	if unit.Action.Destination == nil {
		span.RecordError(domain.ErrMissingDestination)
		return domain.ErrMissingDestination
	}

	dest, err := unit.Action.Destination(ctx)
	if err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, "failed to resolve destination")
	}

	inputHash, err := r.hasher.ComputeInputHash(&unit, site.Root)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if !force && r.isFresh(site, unit.Name, inputHash, dest) {
		span.SetAttribute("press.cached", true)
		return nil
	}

	built, err := unit.Action.BuildContext(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}

	// Templates can rely on the url key; a page that already carries one
	// keeps it.
	built = domain.Union(built, domain.Context{domain.KeyURL: dest})

	body, err := compose.RenderChain(r.engine, unit.Chain, built)
	if err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, "failed to render template chain")
	}

	if err := r.writer.Write(dest, body); err != nil {
		span.RecordError(err)
		return err
	}

	_, _ = fmt.Fprintf(span, "wrote %s (%d bytes)\n", dest, len(body))

	info := domain.BuildInfo{
		PageName:   unit.Name,
		InputHash:  inputHash,
		OutputHash: r.hasher.HashContent([]byte(body)),
		Timestamp:  time.Now(),
	}
	if err := r.store.Put(info); err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, "failed to store build info")
	}

	return nil
}

// isFresh reports whether the stored output for a page can be kept: the
// input hash must match and the destination file must still exist.
func (r *Renderer) isFresh(site *domain.Site, name, inputHash, dest string) bool {
	info, err := r.store.Get(name)
	if err != nil || !info.Matches(inputHash) {
		return false
	}

	ok, err := r.verifier.VerifyOutputs(site.OutputDir(), []string{dest})
	return err == nil && ok
}
