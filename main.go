package main

import (
	"log"
	"os"
	"strings"

	"jsxmerge/cmd"
	"jsxmerge/pkg/logging"
	"jsxmerge/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	if err := logging.Setup(false, logging.AppName, version.Version); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// --debug may swap the global logger, so always go through zap.L().
	if err := cmd.Execute(zap.L()); err != nil {
		zap.L().Fatal("jsxmerge execution failed", zap.Error(err))
	}

	// Syncing a pipe or /dev/null fails with "invalid argument" on some platforms.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := zap.L().Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
