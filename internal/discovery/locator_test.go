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

func writeFile(t *testing.T, dir, name string, mod time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("ts,bidPrice,bidQty,askPrice,askQty\n"), 0644))
	require.NoError(t, os.Chtimes(path, mod, mod))
}

func TestLatestRun_PicksNewestByModTime(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Lexically greater name is older: selection must follow modification time.
	writeFile(t, dir, "book_20250602_090000.csv", base)
	writeFile(t, dir, "book_20250601_080000.csv", base.Add(time.Hour))

	run, err := LatestRun(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.RunID("20250601_080000"), run)
}

func TestLatestRun_IgnoresOtherKinds(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	writeFile(t, dir, "book_20250601_080000.csv", base)
	writeFile(t, dir, "trades_20250605_080000.csv", base.Add(time.Hour))
	writeFile(t, dir, "report_20250605_080000.html", base.Add(2*time.Hour))

	run, err := LatestRun(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.RunID("20250601_080000"), run)
}

func TestLatestRun_TieBrokenByName(t *testing.T) {
	dir := t.TempDir()
	mod := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	writeFile(t, dir, "book_20250601_080000.csv", mod)
	writeFile(t, dir, "book_20250601_090000.csv", mod)

	run, err := LatestRun(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.RunID("20250601_090000"), run)
}

func TestLatestRun_NoLogs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "trades_20250601_080000.csv", time.Now())

	_, err := LatestRun(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoLogsFound)
}

func TestLatestRun_MissingDirectory(t *testing.T) {
	_, err := LatestRun(filepath.Join(t.TempDir(), "absent"))
	assert.ErrorIs(t, err, ErrNoLogsFound)
}

func TestRunIDFromFileName(t *testing.T) {
	run, err := RunIDFromFileName("book_20250601_080000.csv")
	require.NoError(t, err)
	assert.Equal(t, domain.RunID("20250601_080000"), run)

	_, err = RunIDFromFileName("book.csv")
	assert.Error(t, err)
}
