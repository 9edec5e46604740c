// Package config provides the site manifest loader for press.
package config

import (
	"os"
	"path/filepath"

	goversion "github.com/hashicorp/go-version"
	"go.trai.ch/press/internal/build"
	"go.trai.ch/press/internal/core/domain"
	"go.trai.ch/press/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the manifest schema version this build understands.
const SupportedVersion = "1"

var _ ports.SiteLoader = (*FileLoader)(nil)

// FileLoader implements ports.SiteLoader using a YAML manifest file.
type FileLoader struct{}

// NewLoader creates a new FileLoader.
func NewLoader() *FileLoader {
	return &FileLoader{}
}

// Load reads the manifest at the given path.
func (l *FileLoader) Load(path string) (*domain.Site, error) {
	return Load(path)
}

// Discover walks up from the given directory until it finds a site manifest.
func Discover(cwd string) (string, error) {
	currentDir := cwd
	for {
		manifestPath := filepath.Join(currentDir, domain.ManifestName)
		if _, err := os.Stat(manifestPath); err == nil {
			return manifestPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrManifestNotFound, "cwd", cwd)
}

// Load reads a site manifest from the given path and returns a domain.Site
// rooted at the manifest's directory.
func Load(path string) (*domain.Site, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest")
	}

	var manifest Pressfile
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest")
	}

	if manifest.Version != SupportedVersion {
		return nil, zerr.With(domain.ErrUnsupportedVersion, "version", manifest.Version)
	}

	if err := checkRequiredVersion(manifest.RequiresVersion); err != nil {
		return nil, err
	}

	root, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve site root")
	}

	site := &domain.Site{
		Title:   manifest.Title,
		BaseURL: manifest.BaseURL,
		Output:  manifest.Output,
		Root:    root,
	}

	names := make(map[string]bool, len(manifest.Pages))
	for _, dto := range manifest.Pages {
		spec, err := pageSpec(dto)
		if err != nil {
			return nil, err
		}
		if names[spec.Name] {
			return nil, zerr.With(zerr.New("duplicate page name"), "page", spec.Name)
		}
		names[spec.Name] = true
		site.Pages = append(site.Pages, spec)
	}

	return site, nil
}

// checkRequiredVersion enforces the manifest's requires_version constraint
// against the running binary. Dev builds skip the check.
func checkRequiredVersion(required string) error {
	if required == "" || build.Version == "dev" {
		return nil
	}

	want, err := goversion.NewVersion(required)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "invalid requires_version"), "requires_version", required)
	}

	have, err := goversion.NewVersion(build.Version)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "invalid build version"), "version", build.Version)
	}

	if have.LessThan(want) {
		err := zerr.With(zerr.New("site requires a newer press"), "requires_version", required)
		return zerr.With(err, "version", build.Version)
	}

	return nil
}

// pageSpec validates one manifest entry and converts it to the domain model.
// Per-kind completeness (a source page without a source, a listing without a
// url) is the composer's concern.
func pageSpec(dto PageDTO) (domain.PageSpec, error) {
	if dto.Name == "" {
		return domain.PageSpec{}, zerr.New("page without a name")
	}

	kind := domain.PageKind(dto.Kind)
	switch kind {
	case domain.PageKindSource, domain.PageKindListing, domain.PageKindMerge:
	default:
		err := zerr.With(zerr.New("unknown page kind"), "page", dto.Name)
		return domain.PageSpec{}, zerr.With(err, "kind", dto.Kind)
	}

	return domain.PageSpec{
		Name:     dto.Name,
		Kind:     kind,
		Source:   domain.NewPagePath(dto.Source),
		Sources:  domain.NewPagePaths(dto.Sources...),
		URL:      dto.URL,
		Template: domain.NewPagePath(dto.Template),
		Items:    dto.Items,
		Chain:    domain.NewPagePaths(dto.Chain...),
		Fields:   dto.Fields,
	}, nil
}
