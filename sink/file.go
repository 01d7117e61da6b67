package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"emperror.dev/errors"
	"github.com/NYTimes/logrotate"
	"github.com/goccy/go-json"

	"github.com/merethin/akari/events"
)

// File appends each parsed event as one JSON line to path, rotating to
// numbered backups (path.1, path.2, ...) once the current file exceeds
// threshold bytes, keeping at most maxFiles backups.
//
// logrotate.File (rather than a plain *os.File) is the underlying handle:
// it also reopens itself on SIGHUP, so an operator's external logrotate(8)
// setup and this sink's own size-triggered rotation compose without
// either one losing writes mid-rotation.
type File struct {
	path      string
	maxFiles  int
	threshold int64

	mu     sync.Mutex
	handle *logrotate.File
	size   int64
}

// NewFile opens path (creating it and any parent directory if needed) and
// returns a File sink that rotates at threshold bytes, keeping maxFiles
// backups.
func NewFile(path string, maxFiles int, threshold int64) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "sink: failed to create log directory")
	}

	handle, err := logrotate.NewFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "sink: failed to open log file")
	}

	size := int64(0)
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}

	return &File{path: path, maxFiles: maxFiles, threshold: threshold, handle: handle, size: size}, nil
}

// Publish marshals evt as a single JSON line and appends it, rotating
// first if the current file has grown past threshold.
func (f *File) Publish(_ context.Context, evt events.ParsedEvent) error {
	b, err := json.Marshal(evt)
	if err != nil {
		return errors.Wrap(err, "sink: failed to marshal event")
	}
	b = append(b, '\n')

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.threshold > 0 && f.size+int64(len(b)) > f.threshold {
		if err := f.rotateLocked(); err != nil {
			return err
		}
	}

	n, err := f.handle.Write(b)
	f.size += int64(n)
	if err != nil {
		return errors.Wrap(err, "sink: failed to write event")
	}
	return nil
}

// rotateLocked shifts path.(n-1) to path.n down to maxFiles, moves the
// current file to path.1, and reopens a fresh handle at path. Caller must
// hold f.mu.
func (f *File) rotateLocked() error {
	if err := f.handle.Close(); err != nil {
		return errors.Wrap(err, "sink: failed to close log file before rotating")
	}

	if f.maxFiles > 0 {
		oldest := fmt.Sprintf("%s.%d", f.path, f.maxFiles)
		os.Remove(oldest)
		for n := f.maxFiles - 1; n >= 1; n-- {
			from := fmt.Sprintf("%s.%d", f.path, n)
			to := fmt.Sprintf("%s.%d", f.path, n+1)
			os.Rename(from, to)
		}
		os.Rename(f.path, fmt.Sprintf("%s.1", f.path))
	}

	handle, err := logrotate.NewFile(f.path)
	if err != nil {
		return errors.Wrap(err, "sink: failed to reopen log file after rotating")
	}
	f.handle = handle
	f.size = 0
	return nil
}

// Close closes the underlying file handle.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.handle.Close()
}
