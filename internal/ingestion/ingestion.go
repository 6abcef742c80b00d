// Package ingestion loads document text from disk and normalizes it
// before parsing. The normalizer preserves line structure: section
// headers and bullet lists carry signal the extractors rely on.
package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Document is one loaded source file.
type Document struct {
	Path string
	Text string
	// Hash is the SHA256 hex digest of the normalized text, used to
	// spot duplicate submissions across batches.
	Hash string
}

// textExtensions are the file types treated as document sources when
// scanning a directory.
var textExtensions = map[string]bool{
	".txt":  true,
	".text": true,
	".md":   true,
}

// LoadDocument reads and normalizes one file.
func LoadDocument(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("document not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	text := NormalizeText(string(content))
	return &Document{Path: path, Text: text, Hash: hashText(text)}, nil
}

// LoadDirectory loads every text document directly under dir, sorted
// by filename. Files whose normalized text hashes to an already-seen
// digest are duplicate submissions and are skipped; the copy with the
// lexically first name wins. An empty directory is an error; batch
// callers have nothing to do with it.
func LoadDirectory(dir string) ([]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !textExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no text documents found in %s", dir)
	}
	sort.Strings(paths)

	docs := make([]*Document, 0, len(paths))
	seen := make(map[string]bool, len(paths))
	for _, path := range paths {
		doc, err := LoadDocument(path)
		if err != nil {
			return nil, err
		}
		if seen[doc.Hash] {
			continue
		}
		seen[doc.Hash] = true
		docs = append(docs, doc)
	}
	return docs, nil
}

// NormalizeText cleans raw file content while preserving structure.
func NormalizeText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 2. Clean each line, keeping bullets and their indentation
	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}
	result := strings.Join(cleaned, "\n")

	// 3. Cap consecutive blank lines at one (section breaks survive,
	// page-break padding does not)
	result = excessBlankLines.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

var (
	excessBlankLines = regexp.MustCompile(`\n\n\n+`)
	innerWhitespace  = regexp.MustCompile(`\s+`)
)

func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	// Bullet lists keep their indentation; everything else keeps its
	// leading offset but collapses internal runs of whitespace.
	indent := len(line) - len(trimmed)
	if isBulletLine(trimmed) {
		return strings.Repeat(" ", indent) + trimmed
	}

	content := innerWhitespace.ReplaceAllString(trimmed, " ")
	return strings.Repeat(" ", indent) + content
}

func isBulletLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

func hashText(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
