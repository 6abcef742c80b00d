// Package refdata loads the external reference vocabularies the field
// extractor matches against: the skill dictionary, the university name
// table and the job title list. Everything is loaded once at startup
// and immutable afterwards; a missing or unreadable file is a fatal
// configuration failure.
package refdata

import (
	"embed"
	"encoding/csv"
	"io"
	"io/fs"
	"os"
	"strings"
)

//go:embed data/skills.csv data/universities.csv data/titles.txt
var defaultFiles embed.FS

// Paths points at override files on disk. Empty fields fall back to the
// embedded defaults.
type Paths struct {
	SkillsFile       string
	UniversitiesFile string
	TitlesFile       string
}

// Library is the immutable reference data shared by all extractors.
type Library struct {
	// Skills keeps the dictionary's original casing; matching is
	// case-insensitive but results report the canonical form.
	Skills []string
	// Universities are lower-cased institution names.
	Universities []string
	// Titles are lower-cased job designations, one phrase each.
	Titles []string
}

// Load reads the reference files. Any path that is set but unreadable
// or malformed produces a *ConfigError; callers are expected to fail
// fast before processing documents.
func Load(paths Paths) (*Library, error) {
	lib := &Library{}

	skills, err := readCSVColumn(paths.SkillsFile, "data/skills.csv", 0)
	if err != nil {
		return nil, &ConfigError{Resource: "skill dictionary", Path: paths.SkillsFile, Cause: err}
	}
	lib.Skills = skills

	universities, err := readCSVColumn(paths.UniversitiesFile, "data/universities.csv", 1)
	if err != nil {
		return nil, &ConfigError{Resource: "university table", Path: paths.UniversitiesFile, Cause: err}
	}
	for i, u := range universities {
		universities[i] = strings.ToLower(u)
	}
	lib.Universities = dedupe(universities)

	titles, err := readLines(paths.TitlesFile, "data/titles.txt")
	if err != nil {
		return nil, &ConfigError{Resource: "job title list", Path: paths.TitlesFile, Cause: err}
	}
	for i, title := range titles {
		titles[i] = strings.ToLower(title)
	}
	lib.Titles = dedupe(titles)

	return lib, nil
}

func open(path, embedded string) (io.ReadCloser, error) {
	if path != "" {
		return os.Open(path)
	}
	f, err := defaultFiles.Open(embedded)
	if err != nil {
		return nil, err
	}
	return f.(fs.File), nil
}

// readCSVColumn reads one column of a CSV file. Rows shorter than the
// wanted column fall back to their first field, which keeps single
// column files (the skills list) and the country,name,url university
// table readable by the same helper.
func readCSVColumn(path, embedded string, column int) ([]string, error) {
	f, err := open(path, embedded)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var values []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) == 0 {
			continue
		}
		value := record[0]
		if column < len(record) {
			value = record[column]
		}
		value = strings.TrimSpace(value)
		if value != "" {
			values = append(values, value)
		}
	}
	return values, nil
}

func readLines(path, embedded string) ([]string, error) {
	f, err := open(path, embedded)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// dedupe removes case-insensitive duplicates, keeping first-seen order.
func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := values[:0]
	for _, v := range values {
		key := strings.ToLower(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}
