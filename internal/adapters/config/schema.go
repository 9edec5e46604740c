package config

// Pressfile represents the structure of the press.yaml site manifest.
type Pressfile struct {
	Version         string    `yaml:"version"`
	RequiresVersion string    `yaml:"requires_version"`
	Title           string    `yaml:"title"`
	BaseURL         string    `yaml:"base_url"`
	Output          string    `yaml:"output"`
	Pages           []PageDTO `yaml:"pages"`
}

// PageDTO represents one page definition in the manifest. Which fields are
// meaningful depends on the declared kind.
type PageDTO struct {
	Name     string            `yaml:"name"`
	Kind     string            `yaml:"kind"`
	Source   string            `yaml:"source"`
	Sources  []string          `yaml:"sources"`
	URL      string            `yaml:"url"`
	Template string            `yaml:"template"`
	Items    []string          `yaml:"items"`
	Chain    []string          `yaml:"chain"`
	Fields   map[string]string `yaml:"fields"`
}
