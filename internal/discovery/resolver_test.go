package discovery

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"price-impact-report/internal/domain"
)

func TestResolve_Found(t *testing.T) {
	dir := t.TempDir()
	run := domain.RunID("20250601_080000")
	writeFile(t, dir, "stats_20250601_080000.csv", time.Now())

	path, err := Resolve(dir, domain.LogKindStats, run)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "stats_20250601_080000.csv"), path)
}

func TestResolve_MissingAlwaysFileMissing(t *testing.T) {
	dir := t.TempDir()

	for _, run := range []domain.RunID{"20250601_080000", "x", "20991231_235959"} {
		for _, kind := range domain.LogKinds {
			_, err := Resolve(dir, kind, run)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrFileMissing)
			assert.NotErrorIs(t, err, ErrNoLogsFound)
			assert.Contains(t, err.Error(), filepath.Join(dir, kind.FileName(run)))
		}
	}
}

func TestResolve_DirectoryIsMissingFile(t *testing.T) {
	dir := t.TempDir()
	run := domain.RunID("r1")
	require.NoError(t, os.Mkdir(filepath.Join(dir, domain.LogKindTrades.FileName(run)), 0755))

	_, err := Resolve(dir, domain.LogKindTrades, run)
	assert.ErrorIs(t, err, ErrFileMissing)
}

func TestResolveAll(t *testing.T) {
	dir := t.TempDir()
	run := domain.RunID("20250601_080000")
	for _, kind := range domain.LogKinds {
		writeFile(t, dir, kind.FileName(run), time.Now())
	}

	files, err := ResolveAll(dir, run)
	require.NoError(t, err)
	require.Len(t, files, 4)
	assert.Equal(t, filepath.Join(dir, "trades_20250601_080000.csv"), files[domain.LogKindTrades])
}

func TestResolveAll_FailsOnFirstMissing(t *testing.T) {
	dir := t.TempDir()
	run := domain.RunID("20250601_080000")
	writeFile(t, dir, domain.LogKindBook.FileName(run), time.Now())
	writeFile(t, dir, domain.LogKindTrades.FileName(run), time.Now())

	_, err := ResolveAll(dir, run)
	require.ErrorIs(t, err, ErrFileMissing)
	assert.Contains(t, err.Error(), "stats_20250601_080000.csv")
}
