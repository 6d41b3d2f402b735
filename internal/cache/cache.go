package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// GetCacheDir returns the platform-specific cache directory for dirkit
func GetCacheDir() (string, error) {
	// Check for environment override
	if cacheDir := os.Getenv("DIRKIT_CACHE_DIR"); cacheDir != "" {
		return cacheDir, nil
	}

	// Use os.UserCacheDir() with platform-specific fallbacks
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir, err = getFallbackCacheDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
	}

	return filepath.Join(cacheDir, "dirkit"), nil
}

// EnsureCacheDir returns the cache directory, creating it if necessary
func EnsureCacheDir() (string, error) {
	dir, err := GetCacheDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}
	return dir, nil
}

// getFallbackCacheDir returns platform-specific fallback cache directories
func getFallbackCacheDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Caches"), nil
	case "linux":
		if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
			return xdgCache, nil
		}
		return filepath.Join(homeDir, ".cache"), nil
	case "windows":
		if localAppData := os.Getenv("LocalAppData"); localAppData != "" {
			return localAppData, nil
		}
		return filepath.Join(homeDir, "AppData", "Local"), nil
	default:
		return filepath.Join(homeDir, ".cache"), nil
	}
}
