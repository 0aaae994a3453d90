// File: pkg/merge/execute.go
package merge

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Run merges the matching files under args.Root into args.Output.
// Progress lines go to progress when args.Progress is set and progress is
// non-nil. Errors reading individual files end up in the output; everything
// else is returned.
func Run(args Arguments, fs afero.Fs, progress io.Writer, logger *zap.Logger) (summary Summary, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	args = args.withDefaults()
	if !args.Progress {
		progress = nil
	}
	startTime := time.Now()

	root, err := resolvePath(fs, args.Root)
	if err != nil {
		logger.Error("Failed to resolve root directory", zap.String("root", args.Root), zap.Error(err))
		return summary, fmt.Errorf("failed to get absolute path of root: %w", err)
	}
	info, err := fs.Stat(root)
	if err != nil {
		return summary, fmt.Errorf("failed to access root %s: %w", root, err)
	}
	if !info.IsDir() {
		return summary, fmt.Errorf("root %s is not a directory", root)
	}

	output, err := resolvePath(fs, args.Output)
	if err != nil {
		return summary, fmt.Errorf("failed to get absolute path of output: %w", err)
	}

	logger.Info("Starting merge",
		zap.String("root", root),
		zap.String("output", output),
		zap.Strings("ignoreDirs", args.IgnoreDirs),
		zap.Strings("extensions", args.Extensions))

	walker := NewWalker(fs, NewIgnoreSet(args.IgnoreDirs...), args.Extensions, logger)
	files := walker.CollectFiles(root)

	if progress != nil {
		fmt.Fprintf(progress, "Found %d %s files under: %s\n", len(files), strings.Join(args.Extensions, "/"), root)
	}

	outFile, err := fs.Create(output)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", output), zap.Error(err))
		return summary, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("file", output), zap.Error(closeErr))
			if err == nil {
				err = fmt.Errorf("failed to close output file: %w", closeErr)
			}
		}
	}()

	aggregator := NewAggregator(fs, args.Format, progress, logger)
	summary, err = aggregator.Merge(outFile, files)
	if err != nil {
		return summary, fmt.Errorf("failed to write merged output: %w", err)
	}

	if progress != nil {
		fmt.Fprintf(progress, "\nMerge complete. Output written to: %s\n", output)
	}
	logger.Info("Merge completed",
		zap.String("output", output),
		zap.Int("totalFiles", summary.Total),
		zap.Int("failedFiles", summary.Failed),
		zap.Duration("elapsed", time.Since(startTime)))
	return summary, nil
}

// resolvePath makes path absolute and, on the OS filesystem, resolves
// symlinks in it. A path that does not exist yet keeps its base name and has
// only its parent directory resolved.
func resolvePath(fs afero.Fs, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if _, ok := fs.(*afero.OsFs); !ok {
		return abs, nil
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		return filepath.Join(dir, filepath.Base(abs)), nil
	}
	return abs, nil
}
