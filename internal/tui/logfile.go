package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If GLITTER_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.glitter/logs/glitter.log
func GetLogFilePath() string {
	if customPath := os.Getenv("GLITTER_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "glitter.log"
	}

	return filepath.Join(homeDir, ".glitter", "logs", "glitter.log")
}
