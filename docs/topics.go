// Package docs embeds the user manual, organized as topics rendered by the
// `ral topic` command.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.md
var topics embed.FS

// Get returns the content of a documentation topic.
func Get(topic string) (string, error) {
	content, err := topics.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// All returns the sorted list of available topics, excluding the readme.
func All() ([]string, error) {
	entries, err := fs.ReadDir(topics, ".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == "readme" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Merged returns the readme followed by every topic, ready for rendering.
func Merged() (string, error) {
	var b strings.Builder
	readme, err := Get("readme")
	if err != nil {
		return "", err
	}
	b.WriteString(readme)
	all, err := All()
	if err != nil {
		return "", err
	}
	for _, topic := range all {
		content, err := Get(topic)
		if err != nil {
			return "", err
		}
		b.WriteString("\n")
		b.WriteString(content)
	}
	return b.String(), nil
}
