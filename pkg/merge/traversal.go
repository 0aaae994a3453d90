// File: pkg/merge/traversal.go
package merge

import (
	"iter"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Walker finds the files under a root directory that should be merged.
type Walker struct {
	fs         afero.Fs
	ignore     IgnoreSet
	extensions []string // lower-cased
	logger     *zap.Logger
}

// NewWalker returns a Walker over fs that prunes directories named in ignore
// and keeps files whose name ends in one of extensions, ignoring case.
func NewWalker(fs afero.Fs, ignore IgnoreSet, extensions []string, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	exts := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		if ext = strings.TrimSpace(ext); ext != "" {
			exts = append(exts, strings.ToLower(ext))
		}
	}
	return &Walker{
		fs:         fs,
		ignore:     ignore,
		extensions: exts,
		logger:     logger,
	}
}

// Matches reports whether a file name ends in one of the walker's extensions.
func (w *Walker) Matches(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range w.extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Files returns the matching files under root in traversal order. Every range
// over the returned sequence performs a fresh walk.
//
// Ignored directories are filtered before they are pushed onto the walk
// stack, so nothing beneath them is ever listed. Symlinks to directories are
// not followed.
func (w *Walker) Files(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		stack := []string{root}
		for len(stack) > 0 {
			dir := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			entries, err := afero.ReadDir(w.fs, dir)
			if err != nil {
				w.logger.Warn("Failed to read directory", zap.String("directory", dir), zap.Error(err))
				continue
			}

			for _, entry := range entries {
				path := filepath.Join(dir, entry.Name())

				if entry.IsDir() {
					if w.ignore.Contains(entry.Name()) {
						w.logger.Debug("Skipping ignored directory", zap.String("directory", path))
						continue
					}
					stack = append(stack, path)
					continue
				}

				if entry.Mode()&os.ModeSymlink != 0 && w.isDirLink(path) {
					w.logger.Debug("Not following directory symlink", zap.String("path", path))
					continue
				}

				if !w.Matches(entry.Name()) {
					continue
				}
				if !yield(path) {
					return
				}
			}
		}
	}
}

// isDirLink reports whether the symlink at path resolves to a directory.
// Dangling links are treated as files so that the read failure surfaces in
// the merged output.
func (w *Walker) isDirLink(path string) bool {
	info, err := w.fs.Stat(path)
	return err == nil && info.IsDir()
}

// CollectFiles walks root and returns every matching file sorted
// lexicographically by path.
func (w *Walker) CollectFiles(root string) []string {
	w.logger.Debug("Starting file collection", zap.String("root", root))

	var files []string
	for path := range w.Files(root) {
		files = append(files, path)
	}
	sort.Strings(files)

	w.logger.Debug("Completed file collection", zap.Int("files", len(files)))
	return files
}
