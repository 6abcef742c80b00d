// Package ocr segments OCR-recovered resume text into labelled
// sections. Scanned documents lose most layout information, so the
// segmenter leans entirely on section header lines.
package ocr

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/refdata"
)

// Sections maps a canonical section label (refdata.Section*) to the
// text recovered for that section. Extractors treat it as optional
// structured input: a missing label degrades to the unstructured
// scanning path.
type Sections map[string]string

// Lookup returns the content for a canonical label.
func (s Sections) Lookup(label string) (string, bool) {
	content, ok := s[label]
	return content, ok
}

// SegmentationError reports OCR text that could not be split into any
// recognizable section. Callers surface it once per document and move
// on to the next.
type SegmentationError struct {
	Reason string
}

func (e *SegmentationError) Error() string {
	return fmt.Sprintf("ocr: segmentation failed: %s", e.Reason)
}

// Segment splits OCR plain text into sections. A line is a header when
// its punctuation-stripped, lower-cased words contain a known section
// header spelling and the line is short enough to not be body text.
// Content lines accumulate under the most recent header; text before
// the first header is discarded. Returns a *SegmentationError when no
// header is found at all.
func Segment(text string) (Sections, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &SegmentationError{Reason: "empty document"}
	}

	sections := make(Sections)
	current := ""
	var buf []string

	flush := func() {
		if current == "" {
			return
		}
		content := strings.TrimSpace(strings.Join(buf, "\n"))
		if content == "" {
			buf = nil
			return
		}
		if existing, ok := sections[current]; ok {
			sections[current] = existing + "\n" + content
		} else {
			sections[current] = content
		}
		buf = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if label, ok := headerLabel(line); ok {
			flush()
			current = label
			continue
		}
		if current != "" {
			buf = append(buf, line)
		}
	}
	flush()

	if len(sections) == 0 {
		return nil, &SegmentationError{Reason: "no section headers recognized"}
	}
	return sections, nil
}

// headerLabel decides whether a line is a section header. Headers are
// at most four words; longer lines are body text even when they happen
// to mention a section name.
func headerLabel(line string) (string, bool) {
	words := strings.Fields(line)
	if len(words) == 0 || len(words) > 4 {
		return "", false
	}
	for _, w := range words {
		key := normalizeHeaderWord(w)
		if label, ok := refdata.SectionHeaders[key]; ok {
			return label, true
		}
	}
	return "", false
}

func normalizeHeaderWord(w string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(w) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
