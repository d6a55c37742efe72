package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/browser"
	"github.com/rs/zerolog"

	"price-impact-report/internal/domain"
)

// Opener displays a written report.
type Opener interface {
	Open(path string) error
}

// BrowserOpener opens reports in the system default browser.
type BrowserOpener struct{}

// Open implements Opener.
func (BrowserOpener) Open(path string) error {
	return browser.OpenFile(path)
}

// NoopOpener never opens anything.
type NoopOpener struct{}

// Open implements Opener.
func (NoopOpener) Open(string) error { return nil }

// Emitter writes report_<id>.html into a directory and hands it to an Opener.
type Emitter struct {
	dir    string
	opener Opener
	logger zerolog.Logger
}

// NewEmitter creates an emitter for dir. A nil opener disables opening.
func NewEmitter(dir string, opener Opener) *Emitter {
	if opener == nil {
		opener = NoopOpener{}
	}
	return &Emitter{
		dir:    dir,
		opener: opener,
		logger: zerolog.Nop(),
	}
}

// WithLogger sets the logger used for open failures.
func (e *Emitter) WithLogger(logger zerolog.Logger) *Emitter {
	e.logger = logger
	return e
}

// Emit renders the figure, writes it and opens it. It returns the written path.
// A failure to open the file is logged and does not fail the call.
func (e *Emitter) Emit(run domain.RunID, fig *Figure) (string, error) {
	doc, err := RenderHTML(fig, FigureTitle(run))
	if err != nil {
		return "", err
	}

	path := filepath.Join(e.dir, domain.ReportFileName(run))
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}

	if err := e.opener.Open(path); err != nil {
		e.logger.Warn().Err(err).Str("path", path).Msg("could not open report in browser")
	}
	return path, nil
}
