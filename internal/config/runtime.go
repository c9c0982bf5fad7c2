package config

import (
	"os"
	"path/filepath"
)

func GetRuntimePath() string {
	path := os.Getenv("QUAKE_RUNTIME_PATH")
	if path == "" {
		path = ".quakeaid"
	}
	return resolveRuntimePath(path)
}

// resolveRuntimePath anchors relative runtime paths under the home
// directory so every command resolves the same location regardless of cwd.
func resolveRuntimePath(path string) string {
	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
