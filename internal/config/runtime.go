package config

import (
	"os"
	"path/filepath"
)

const defaultRuntimePath = ".undoable"

// GetRuntimePath resolves the runtime directory before any config is parsed,
// so the .env inside it can feed NewAppConfig.
func GetRuntimePath() string {
	return resolveRuntimePath(os.Getenv("UNDOABLE_RUNTIME_PATH"))
}

func GetEnvPath() string {
	return filepath.Join(GetRuntimePath(), ".env")
}

// resolveRuntimePath anchors relative paths at the user's home.
func resolveRuntimePath(path string) string {
	if path == "" {
		path = defaultRuntimePath
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
