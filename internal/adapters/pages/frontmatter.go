package pages

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"go.trai.ch/press/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Front matter delimiters. A page opens its metadata block with one of these
// on the first line and closes it with the same delimiter on its own line.
const (
	yamlDelimiter = "---"
	tomlDelimiter = "+++"
)

// parsePage splits raw file content into front matter and body.
func parsePage(path domain.PagePath, content string) (domain.Page, error) {
	meta, body, err := splitFrontMatter(content)
	if err != nil {
		return domain.Page{}, zerr.With(err, "path", path.String())
	}
	return domain.Page{Path: path, Meta: meta, Body: body}, nil
}

// splitFrontMatter extracts the metadata block, if any, and returns the
// remaining body. Content without a leading delimiter is all body.
func splitFrontMatter(content string) (map[string]string, string, error) {
	lines := strings.Split(content, "\n")
	delim := strings.TrimRight(lines[0], "\r")
	if delim != yamlDelimiter && delim != tomlDelimiter {
		return nil, content, nil
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") != delim {
			continue
		}
		meta, err := decodeBlock(strings.Join(lines[1:i], "\n"), delim)
		if err != nil {
			return nil, "", err
		}
		return meta, strings.Join(lines[i+1:], "\n"), nil
	}

	return nil, "", zerr.New("unterminated front matter")
}

// decodeBlock parses a metadata block in the format its delimiter announces.
// Values are flattened to strings, matching the context model.
func decodeBlock(block string, delim string) (map[string]string, error) {
	var raw map[string]any

	switch delim {
	case yamlDelimiter:
		if err := yaml.Unmarshal([]byte(block), &raw); err != nil {
			return nil, zerr.Wrap(err, "failed to parse yaml front matter")
		}
	case tomlDelimiter:
		if err := toml.Unmarshal([]byte(block), &raw); err != nil {
			return nil, zerr.Wrap(err, "failed to parse toml front matter")
		}
	}

	meta := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			meta[k] = s
			continue
		}
		meta[k] = fmt.Sprint(v)
	}
	return meta, nil
}
