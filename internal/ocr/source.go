package ocr

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-matcher/internal/refdata"
)

// LoadSections reads sections produced by an external OCR service: a
// JSON object mapping section names to recovered text. Keys are
// canonicalized through the section header table, so "Work History"
// and "EXPERIENCE" both land under the experience label. Keys that
// match no known header are dropped.
func LoadSections(path string) (Sections, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sections file: %w", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse sections file %s: %w", path, err)
	}

	sections := make(Sections)
	for key, content := range raw {
		content = strings.TrimSpace(content)
		if content == "" {
			continue
		}
		label, ok := canonicalLabel(key)
		if !ok {
			continue
		}
		if existing, found := sections[label]; found {
			sections[label] = existing + "\n" + content
		} else {
			sections[label] = content
		}
	}

	if len(sections) == 0 {
		return nil, &SegmentationError{Reason: "no recognizable section names in " + path}
	}
	return sections, nil
}

// canonicalLabel maps an arbitrary section name onto a canonical
// label using the same word table the segmenter uses.
func canonicalLabel(name string) (string, bool) {
	for _, w := range strings.Fields(name) {
		if label, ok := refdata.SectionHeaders[normalizeHeaderWord(w)]; ok {
			return label, true
		}
	}
	return "", false
}
