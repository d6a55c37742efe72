package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"price-impact-report/internal/domain"
)

// bookPattern matches book logs of every run.
const bookPattern = "book_*.csv"

// LatestRun returns the run id of the most recently modified book log in dir.
// Ties on modification time go to the lexically greater file name.
// Returns ErrNoLogsFound if dir contains no book log.
func LatestRun(dir string) (domain.RunID, error) {
	matches, err := filepath.Glob(filepath.Join(dir, bookPattern))
	if err != nil {
		return "", fmt.Errorf("scan %s: %w", dir, err)
	}

	var (
		newest    string
		newestMod time.Time
	)
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
		if info.IsDir() {
			continue
		}
		mod := info.ModTime()
		if newest == "" || mod.After(newestMod) || (mod.Equal(newestMod) && path > newest) {
			newest = path
			newestMod = mod
		}
	}

	if newest == "" {
		return "", fmt.Errorf("%w in %s", ErrNoLogsFound, dir)
	}

	return RunIDFromFileName(filepath.Base(newest))
}

// RunIDFromFileName extracts the run id from a log file name: the stem after the first "_".
func RunIDFromFileName(name string) (domain.RunID, error) {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	_, id, ok := strings.Cut(stem, "_")
	if !ok || id == "" {
		return "", fmt.Errorf("no run id in file name %q", name)
	}
	return domain.RunID(id), nil
}
