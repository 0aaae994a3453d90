// File: pkg/merge/aggregate.go
package merge

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Entry is one element of a merge: a file path and either its text or the
// error that prevented reading it.
type Entry struct {
	Path    string // Absolute path of the merged file.
	Content string // Decoded file text; empty when Err is set.
	Err     error  // Read failure, rendered as an inline placeholder.
}

// Summary describes a finished merge.
type Summary struct {
	Total  int // Files found, as reported in the footer.
	Failed int // Files written as error placeholders.
}

// Aggregator writes files into a single framed text stream.
type Aggregator struct {
	fs       afero.Fs
	format   Format
	progress io.Writer
	logger   *zap.Logger
}

// NewAggregator returns an Aggregator reading from fs. When progress is non-nil
// one line per merged file is written to it.
func NewAggregator(fs afero.Fs, format Format, progress io.Writer, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		fs:       fs,
		format:   format,
		progress: progress,
		logger:   logger,
	}
}

// Read loads a single file into an Entry. It never fails; read errors are
// kept on the entry.
func (a *Aggregator) Read(path string) Entry {
	content, err := readText(a.fs, path)
	if err != nil {
		a.logger.Warn("Failed to read file", zap.String("filePath", path), zap.Error(err))
		return Entry{Path: path, Err: err}
	}
	a.logger.Debug("Read file content", zap.String("filePath", path), zap.Int("contentSizeBytes", len(content)))
	return Entry{Path: path, Content: content}
}

// WriteEntry writes the header, body and separator of e to w.
func (a *Aggregator) WriteEntry(w io.Writer, e Entry) error {
	body := e.Content
	if e.Err != nil {
		body = fmt.Sprintf(a.format.ReadError, e.Err)
	}
	if _, err := fmt.Fprintf(w, a.format.Header, e.Path); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", e.Path, err)
	}
	if _, err := io.WriteString(w, body); err != nil {
		return fmt.Errorf("failed to write content for %s: %w", e.Path, err)
	}
	if _, err := io.WriteString(w, a.format.Separator); err != nil {
		return fmt.Errorf("failed to write separator for %s: %w", e.Path, err)
	}
	return nil
}

// Merge writes every file in files, in the given order, to out and finishes
// with the footer. An unreadable file does not stop the merge; only write
// failures on out are returned.
func (a *Aggregator) Merge(out io.Writer, files []string) (Summary, error) {
	summary := Summary{Total: len(files)}
	writer := bufio.NewWriter(out)

	for i, path := range files {
		entry := a.Read(path)
		if entry.Err != nil {
			summary.Failed++
		}
		if err := a.WriteEntry(writer, entry); err != nil {
			a.logger.Error("Failed to write merged entry", zap.String("filePath", path), zap.Error(err))
			return summary, err
		}
		if a.progress != nil {
			fmt.Fprintf(a.progress, "[%d/%d] merged: %s\n", i+1, summary.Total, path)
		}
	}

	if _, err := fmt.Fprintf(writer, a.format.Footer, summary.Total); err != nil {
		return summary, fmt.Errorf("failed to write footer: %w", err)
	}
	if err := writer.Flush(); err != nil {
		a.logger.Error("Failed to flush merged output", zap.Error(err))
		return summary, fmt.Errorf("failed to flush output: %w", err)
	}
	return summary, nil
}
