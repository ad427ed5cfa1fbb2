package timezone

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// zoneInfoDirs are probed in order when no directory is configured.
var zoneInfoDirs = []string{
	"/usr/share/zoneinfo/",
	"/usr/share/lib/zoneinfo/",
	"/usr/lib/locale/TZ/",
	"/etc/zoneinfo/",
}

// regions are the top-level directories holding canonical identifiers.
// Legacy aliases (US/, Etc/, posix/, right/...) are skipped.
var regions = map[string]bool{
	"Africa":     true,
	"America":    true,
	"Antarctica": true,
	"Arctic":     true,
	"Asia":       true,
	"Atlantic":   true,
	"Australia":  true,
	"Europe":     true,
	"Indian":     true,
	"Pacific":    true,
}

// zoneTable lists one canonical zone per line (country code, coordinates,
// identifier, comment). Backward-compatibility links such as Asia/Calcutta are
// not in it.
const zoneTable = "zone.tab"

// Identifiers returns the canonical identifiers found in a zoneinfo directory,
// sorted lexically. An empty dir means the ZONEINFO environment variable or the
// usual system locations.
//
// Identifiers come from the directory's zone.tab plus UTC, keeping only those
// backed by a zone file. Directories without a zone.tab are walked instead.
func Identifiers(dir string) ([]string, error) {
	if dir == "" {
		dir = findZoneInfoDir()
	}
	if dir == "" {
		return nil, ErrDatabaseNotFound
	}

	root := os.DirFS(dir)

	ids, err := tableIdentifiers(root)
	if errors.Is(err, fs.ErrNotExist) {
		ids, err = walkIdentifiers(root)
	}
	if err != nil {
		return nil, errors.Join(ErrDatabaseNotFound, err)
	}
	if len(ids) == 0 {
		return nil, ErrDatabaseNotFound
	}

	slices.Sort(ids)
	return slices.Compact(ids), nil
}

func tableIdentifiers(root fs.FS) ([]string, error) {
	data, err := fs.ReadFile(root, zoneTable)
	if err != nil {
		return nil, err
	}

	var ids []string
	if isZoneFile(root, "UTC") {
		ids = append(ids, "UTC")
	}
	for line := range strings.Lines(string(data)) {
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
		if len(fields) < 3 {
			continue
		}
		id := fields[2]
		region, _, nested := strings.Cut(id, "/")
		if nested && regions[region] && fs.ValidPath(id) && isZoneFile(root, id) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// walkIdentifiers collects every zone file under the canonical regions.
func walkIdentifiers(root fs.FS) ([]string, error) {
	var ids []string
	err := fs.WalkDir(root, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == "." {
			return nil
		}

		region, _, nested := strings.Cut(path, "/")
		if d.IsDir() {
			if !nested && !regions[region] {
				return fs.SkipDir
			}
			return nil
		}

		if path == "UTC" || (nested && regions[region] && isZoneFile(root, path)) {
			ids = append(ids, path)
		}
		return nil
	})
	return ids, err
}

func findZoneInfoDir() string {
	candidates := zoneInfoDirs
	if env := os.Getenv("ZONEINFO"); env != "" {
		candidates = append([]string{env}, candidates...)
	}
	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return filepath.Clean(dir)
		}
	}
	return ""
}

// isZoneFile checks the TZif magic so stray files (tables, readmes) are skipped.
func isZoneFile(root fs.FS, path string) bool {
	f, err := root.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	magic := make([]byte, 4)
	if _, err := f.Read(magic); err != nil {
		return false
	}
	return string(magic) == "TZif"
}
