package catalog

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// FileName is the catalog file looked up in every candidate directory
	FileName = "languages.json"

	// AppName names the per-app data directories
	AppName = "kapa"

	// SystemDataDir is the system-wide shared data location
	SystemDataDir = "/usr/local/share/kapa"
)

// DefaultCandidates returns the catalog locations in probe order.
// A non-empty explicit path is probed first.
//
// Order:
//  1. explicit path (--data / KAPA_DATA)
//  2. ./languages.json
//  3. languages.json next to the executable
//  4. /usr/local/share/kapa/languages.json
//  5. <user data dir>/kapa/languages.json
func DefaultCandidates(explicit string) []string {
	var paths []string

	if explicit != "" {
		paths = append(paths, explicit)
	}

	paths = append(paths, FileName)

	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), FileName))
	}

	paths = append(paths, filepath.Join(SystemDataDir, FileName))

	if xdg.DataHome != "" {
		paths = append(paths, filepath.Join(xdg.DataHome, AppName, FileName))
	}

	return paths
}
