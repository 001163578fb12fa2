package logger

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// DefaultBufferSize is the write buffer size for log files
const DefaultBufferSize = 32 * 1024

const (
	logFilePermissions = 0o600
	logDirPermissions  = 0o700
)

// BufferedFileWriter wraps a log file with buffered I/O. It is safe for
// concurrent use. A check run is short lived, so the buffer is flushed on
// Flush and Close only.
type BufferedFileWriter struct {
	mu       sync.Mutex
	file     afero.File
	writer   *bufio.Writer
	filePath string
	closed   bool
}

// BufferedWriterOption configures a BufferedFileWriter
type BufferedWriterOption func(*bufferedWriterOptions)

type bufferedWriterOptions struct {
	bufferSize int
}

// WithBufferSize sets the buffer size for the writer
func WithBufferSize(size int) BufferedWriterOption {
	return func(o *bufferedWriterOptions) {
		if size > 0 {
			o.bufferSize = size
		}
	}
}

// NewBufferedFileWriter opens filePath on fs in append mode, creating parent
// directories as needed.
func NewBufferedFileWriter(fs afero.Fs, filePath string, opts ...BufferedWriterOption) (*BufferedFileWriter, error) {
	o := bufferedWriterOptions{bufferSize: DefaultBufferSize}
	for _, opt := range opts {
		opt(&o)
	}

	if dir := filepath.Dir(filePath); dir != "." && dir != filePath {
		if err := fs.MkdirAll(dir, logDirPermissions); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	file, err := fs.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", filePath, err)
	}

	return &BufferedFileWriter{
		file:     file,
		writer:   bufio.NewWriterSize(file, o.bufferSize),
		filePath: filePath,
	}, nil
}

// Write writes data to the buffer
func (w *BufferedFileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, fmt.Errorf("log writer for %s is closed", w.filePath)
	}
	return w.writer.Write(p)
}

// Flush writes buffered data to the underlying file without syncing it.
func (w *BufferedFileWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	if err := w.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush buffer: %w", err)
	}
	return nil
}

// Close flushes, syncs and closes the file. Calling Close twice is safe.
func (w *BufferedFileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	var errs []error
	if err := w.writer.Flush(); err != nil {
		errs = append(errs, fmt.Errorf("failed to flush buffer: %w", err))
	}
	if err := w.file.Sync(); err != nil {
		errs = append(errs, fmt.Errorf("failed to sync file: %w", err))
	}
	if err := w.file.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close file: %w", err))
	}
	return errors.Join(errs...)
}

// FilePath returns the path of the underlying file
func (w *BufferedFileWriter) FilePath() string {
	return w.filePath
}

// Buffered returns the number of bytes not yet written to the file
func (w *BufferedFileWriter) Buffered() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return 0
	}
	return w.writer.Buffered()
}

var _ io.WriteCloser = (*BufferedFileWriter)(nil)
