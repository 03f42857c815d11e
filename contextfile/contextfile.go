// Package contextfile assembles the context bundle handed to a Translator.
//
// The bundle is background text (project descriptions, domain glossaries)
// that the oracle uses to disambiguate domain terms. Sources are collected
// in a fixed order and joined into one opaque string; the engine only needs
// equality and hashability over the result.
package contextfile

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// EnvVar is the environment variable consulted for context text.
const EnvVar = "GOIDENT_CONTEXT"

// dedicatedFiles are project context files searched in order; only the
// first match is loaded.
var dedicatedFiles = []string{".context.md", ".context.txt", "CONTEXT.md", "context.md"}

const (
	readmeLimit  = 1500 // characters of README.md kept
	docLimit     = 500  // characters kept per docs/ file
	maxDocsFiles = 5    // docs/ files considered
)

// Options configure context bundle assembly.
type Options struct {
	Literal string // Context provided directly
	File    string // Explicit context file path
	Dir     string // Directory searched for project context files; empty disables discovery
}

// Load assembles the context bundle. Sources are collected in order:
// the literal string, the explicit file, the GOIDENT_CONTEXT environment
// variable, then (when Dir is set) the first dedicated context file, a
// truncated README.md, and truncated files under docs/. Missing or
// unreadable sources are skipped. An empty result means "no context".
func Load(opts Options) string {
	var collected []string

	if opts.Literal != "" {
		collected = append(collected, opts.Literal)
	}

	if opts.File != "" {
		if content, ok := readSource(opts.File); ok {
			collected = append(collected, "# From "+filepath.Base(opts.File)+"\n"+content)
		}
	}

	if env := os.Getenv(EnvVar); env != "" {
		collected = append(collected, env)
	}

	if opts.Dir != "" {
		collected = append(collected, discover(opts.Dir)...)
	}

	return strings.Join(collected, "\n\n---\n\n")
}

// discover collects project context files under dir.
func discover(dir string) []string {
	var collected []string

	// Dedicated context file, first match only
	for _, name := range dedicatedFiles {
		if content, ok := readSource(filepath.Join(dir, name)); ok {
			collected = append(collected, "# From "+name+"\n"+content)
			break
		}
	}

	if content, ok := readSource(filepath.Join(dir, "README.md")); ok {
		collected = append(collected, "# From README.md\n"+truncate(content, readmeLimit))
	}

	if docs := collectDocs(filepath.Join(dir, "docs")); len(docs) > 0 {
		collected = append(collected, "# From docs/\n"+strings.Join(docs, "\n\n"))
	}

	return collected
}

// collectDocs reads up to maxDocsFiles markdown and HTML files under docsDir.
func collectDocs(docsDir string) []string {
	entries, err := os.ReadDir(docsDir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".md", ".html", ".htm":
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	if len(names) > maxDocsFiles {
		names = names[:maxDocsFiles]
	}

	var docs []string
	for _, name := range names {
		if content, ok := readSource(filepath.Join(docsDir, name)); ok {
			docs = append(docs, "## "+name+"\n"+truncate(content, docLimit))
		}
	}
	return docs
}

// readSource reads a context source file. HTML files are reduced to their
// visible text.
func readSource(path string) (string, bool) {
	raw, err := os.ReadFile(path) // #nosec G304 - context paths are caller-provided
	if err != nil {
		return "", false
	}

	content := string(raw)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err := StripHTML(content)
		if err != nil || text == "" {
			return "", false
		}
		return text, true
	}
	return content, true
}

// truncate cuts content to limit characters, marking the cut.
func truncate(content string, limit int) string {
	runes := []rune(content)
	if len(runes) <= limit {
		return content
	}
	return string(runes[:limit]) + "\n...(truncated)"
}
