package workflow

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/greboid/wfl/pkg/util"
)

// DefaultDir is where workflow files are looked up, relative to the
// repository root.
const DefaultDir = ".github/workflows"

var extensions = []string{".yml", ".yaml"}

// FindFiles returns the workflow files directly inside dir: all .yml files
// followed by all .yaml files. A missing directory is not an error.
func FindFiles(fsys util.ReadableFS, dir string) ([]string, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("workflow directory does not exist", "dir", dir)
			return nil, nil
		}
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var files []string
	for _, ext := range extensions {
		var matches []string
		for _, entry := range entries {
			if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			if filepath.Ext(entry.Name()) == ext {
				matches = append(matches, filepath.Join(dir, entry.Name()))
			}
		}
		sort.Strings(matches)
		files = append(files, matches...)
	}

	return files, nil
}

// Load reads and parses a single workflow file.
func Load(fsys util.ReadableFS, path string) (*Summary, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workflow file: %w", err)
	}

	return Parse(data, filepath.Base(path))
}

// Collect loads every workflow file in dir. Files that cannot be read or
// parsed are reported on errOut and skipped.
func Collect(fsys util.ReadableFS, dir string, errOut io.Writer) ([]Summary, error) {
	files, err := FindFiles(fsys, dir)
	if err != nil {
		return nil, err
	}

	slog.Debug("found workflow files", "dir", dir, "count", len(files))

	summaries := make([]Summary, 0, len(files))
	for _, path := range files {
		summary, err := Load(fsys, path)
		if err != nil {
			slog.Debug("skipping workflow file", "path", path, "error", err)
			if _, werr := fmt.Fprintf(errOut, "Error parsing %s: %v\n", filepath.Base(path), err); werr != nil {
				return nil, fmt.Errorf("writing error line: %w", werr)
			}
			continue
		}

		slog.Debug("parsed workflow file",
			"path", path,
			"name", summary.Name,
			"triggers", len(summary.Triggers),
			"jobs", len(summary.Jobs))
		summaries = append(summaries, *summary)
	}

	return summaries, nil
}

// Sort orders summaries by display name, keeping discovery order for ties.
func Sort(summaries []Summary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Name < summaries[j].Name
	})
}
