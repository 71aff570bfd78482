package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// FileName is the log file inside the log directory
const FileName = "tasktrack.log"

// Init initializes the logging system, appending to <logDir>/tasktrack.log.
// Uses text format for human readability. When the file cannot be opened the
// logger discards output and the error is returned for the caller to report.
func Init(logDir string, level slog.Level) (io.Closer, error) {
	file, err := openLogFile(logDir)
	if err != nil {
		setDefault(io.Discard, level)
		return nopCloser{}, err
	}

	setDefault(file, level)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}

func openLogFile(logDir string) (*os.File, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(logDir, FileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

func setDefault(w io.Writer, level slog.Level) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
