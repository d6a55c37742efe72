package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"price-impact-report/internal/domain"
)

// RunFiles maps each log kind of a run to its path.
type RunFiles map[domain.LogKind]string

// Resolve returns the path of the kind's log for run in dir.
// Returns an error wrapping ErrFileMissing, naming the expected path, if the file does not exist.
func Resolve(dir string, kind domain.LogKind, run domain.RunID) (string, error) {
	path := filepath.Join(dir, kind.FileName(run))

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrFileMissing, path)
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrFileMissing, path)
	}

	return path, nil
}

// ResolveAll resolves every log kind of run, failing on the first missing file.
func ResolveAll(dir string, run domain.RunID) (RunFiles, error) {
	files := make(RunFiles, len(domain.LogKinds))
	for _, kind := range domain.LogKinds {
		path, err := Resolve(dir, kind, run)
		if err != nil {
			return nil, err
		}
		files[kind] = path
	}
	return files, nil
}
