package domain

// PageKind discriminates the three ways a manifest can define a page.
type PageKind string

const (
	// PageKindSource is a page rendered from a single source file.
	PageKindSource PageKind = "source"
	// PageKindListing is a generated page whose body lists other pages.
	PageKindListing PageKind = "listing"
	// PageKindMerge is a page combining several source files at one URL.
	PageKindMerge PageKind = "merge"
)

// PageSpec is one page definition from the site manifest, already validated
// by the loader. Which fields are meaningful depends on Kind.
type PageSpec struct {
	// Name identifies the page for targeting, caching and telemetry.
	Name string

	// Kind selects how the page is composed.
	Kind PageKind

	// Source is the page file for PageKindSource.
	Source PagePath

	// Sources are the page files merged for PageKindMerge, at least two.
	Sources []PagePath

	// URL is the explicit destination. Listings require one; the other kinds
	// fall back to the url derived from their first source.
	URL string

	// Template renders each listed item for PageKindListing.
	Template PagePath

	// Items are glob patterns selecting the listed pages for PageKindListing.
	Items []string

	// Chain is the template chain applied to the built page, outermost last.
	Chain []PagePath

	// Fields are extra literal context values overlaid onto the page.
	Fields map[string]string
}

// Site is the loaded site manifest plus the directory it was loaded from.
type Site struct {
	Title   string
	BaseURL string
	Output  string
	Root    string
	Pages   []PageSpec
}

// Unit is one schedulable page render: a name, the action producing it, and
// the template chain the driver folds the built context through.
type Unit struct {
	Name   string
	Action Action
	Chain  []PagePath
}

// Inputs lists every source path the unit reads when built: the action's
// dependencies followed by the chain templates.
func (u *Unit) Inputs() []PagePath {
	inputs := make([]PagePath, 0, len(u.Action.Dependencies)+len(u.Chain))
	inputs = append(inputs, u.Action.Dependencies...)
	inputs = append(inputs, u.Chain...)
	return inputs
}
