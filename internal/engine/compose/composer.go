package compose

import (
	"context"
	"sort"

	"go.trai.ch/press/internal/core/domain"
	"go.trai.ch/press/internal/core/ports"
	"go.trai.ch/zerr"
)

// Composer lowers a loaded site into schedulable render units.
type Composer struct {
	reader   ports.PageReader
	urls     ports.URLResolver
	resolver ports.InputResolver
	builder  *Builder
}

// NewComposer creates a new Composer.
func NewComposer(reader ports.PageReader, urls ports.URLResolver, resolver ports.InputResolver, engine ports.TemplateEngine) *Composer {
	return &Composer{
		reader:   reader,
		urls:     urls,
		resolver: resolver,
		builder:  NewBuilder(engine),
	}
}

// Compose turns every page declaration into a render unit and checks that no
// two pages claim the same destination.
func (c *Composer) Compose(ctx context.Context, site *domain.Site) ([]domain.Unit, error) {
	if len(site.Pages) == 0 {
		return nil, domain.ErrNoPagesDefined
	}

	units := make([]domain.Unit, 0, len(site.Pages))
	seen := make(map[string]string, len(site.Pages))

	for _, spec := range site.Pages {
		unit, err := c.compose(site, spec)
		if err != nil {
			return nil, zerr.With(err, "page", spec.Name)
		}

		if unit.Action.Destination != nil {
			dest, err := unit.Action.Destination(ctx)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to resolve destination"), "page", spec.Name)
			}
			if other, ok := seen[dest]; ok {
				err := zerr.With(domain.ErrDuplicateDestination, "url", dest)
				err = zerr.With(err, "first_page", other)
				return nil, zerr.With(err, "duplicate_page", spec.Name)
			}
			seen[dest] = spec.Name
		}

		units = append(units, unit)
	}

	return units, nil
}

func (c *Composer) compose(site *domain.Site, spec domain.PageSpec) (domain.Unit, error) {
	switch spec.Kind {
	case domain.PageKindSource:
		return c.composeSource(spec)
	case domain.PageKindListing:
		return c.composeListing(site, spec)
	case domain.PageKindMerge:
		return c.composeMerge(spec)
	default:
		return domain.Unit{}, zerr.With(zerr.New("unknown page kind"), "kind", string(spec.Kind))
	}
}

// composeSource turns a single-file page into a unit. The page's own action
// is the leaf reference; manifest fields are overlaid with precedence over
// the page's metadata.
func (c *Composer) composeSource(spec domain.PageSpec) (domain.Unit, error) {
	if spec.Source.String() == "" {
		return domain.Unit{}, zerr.New("source page requires a source file")
	}

	action := domain.AsAction(NewPageRef(spec.Source, c.reader, c.urls))
	if spec.URL != "" {
		action.Destination = domain.StaticDestination(spec.URL)
	}
	if len(spec.Fields) > 0 {
		action = domain.Combine(fieldsAction(spec.Fields), action)
	}

	return domain.Unit{Name: spec.Name, Action: action, Chain: spec.Chain}, nil
}

// composeListing resolves the item patterns and builds the listing action.
// Patterns that match nothing are fine: the listing then has an empty body.
func (c *Composer) composeListing(site *domain.Site, spec domain.PageSpec) (domain.Unit, error) {
	if spec.URL == "" {
		return domain.Unit{}, zerr.New("listing page requires a url")
	}
	if spec.Template.String() == "" {
		return domain.Unit{}, zerr.New("listing page requires a template")
	}

	paths, err := c.resolver.ResolveInputs(spec.Items, site.Root)
	if err != nil {
		return domain.Unit{}, zerr.Wrap(err, "failed to resolve listing items")
	}

	items := make([]domain.Renderable, 0, len(paths))
	for _, path := range paths {
		items = append(items, NewPageRef(domain.NewPagePath(path), c.reader, c.urls))
	}

	action := c.builder.Listing(spec.URL, spec.Template, items, sortedFields(spec.Fields))
	return domain.Unit{Name: spec.Name, Action: action, Chain: spec.Chain}, nil
}

// composeMerge folds the sources left to right, so the first source wins on
// context collisions. With an explicit url the last combination carries it,
// otherwise the merged page inherits the first source's derived url.
func (c *Composer) composeMerge(spec domain.PageSpec) (domain.Unit, error) {
	if len(spec.Sources) < 2 {
		return domain.Unit{}, zerr.New("merge page requires at least two sources")
	}

	refs := make([]domain.Renderable, 0, len(spec.Sources))
	for _, src := range spec.Sources {
		refs = append(refs, NewPageRef(src, c.reader, c.urls))
	}

	var merged domain.Renderable
	if spec.URL != "" {
		head := refs[0]
		for _, ref := range refs[1 : len(refs)-1] {
			head = domain.CombineRenderables(head, ref)
		}
		merged = domain.CombineWithURL(spec.URL, head, refs[len(refs)-1])
	} else {
		head := refs[0]
		for _, ref := range refs[1:] {
			head = domain.CombineRenderables(head, ref)
		}
		merged = head
	}

	action := domain.AsAction(merged)
	if len(spec.Fields) > 0 {
		action = domain.Combine(fieldsAction(spec.Fields), action)
	}

	return domain.Unit{Name: spec.Name, Action: action, Chain: spec.Chain}, nil
}

// fieldsAction wraps manifest field literals in a destination-less action.
func fieldsAction(fields map[string]string) domain.Action {
	resolved := sortedFields(fields)
	return domain.Action{
		Build: func(ctx context.Context) (domain.Context, error) {
			return domain.ResolveFields(ctx, resolved)
		},
	}
}

// sortedFields converts manifest fields to a deterministic field list.
func sortedFields(fields map[string]string) []domain.Field {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]domain.Field, 0, len(keys))
	for _, k := range keys {
		out = append(out, domain.Field{Key: k, Value: domain.Literal(fields[k])})
	}
	return out
}
