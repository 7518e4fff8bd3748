// Package photos lists the photo files of a timeline week.
package photos

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// AllowedExtensions are the photo file extensions, lowercase.
var AllowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Lister lists week photo directories on a filesystem.
type Lister struct {
	Fs afero.Fs
}

// NewLister creates a Lister on fs. A nil fs means the OS filesystem.
func NewLister(fs afero.Fs) *Lister {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Lister{Fs: fs}
}

// WeekDir returns the directory holding the photos of week: <baseDir>/W<week>.
func WeekDir(baseDir string, week int) string {
	dir := filepath.ToSlash(baseDir)
	if dir != "" && !strings.HasSuffix(dir, "/") {
		dir += "/"
	}
	return dir + "W" + strconv.Itoa(week)
}

// List returns the photos of week as forward-slash paths under baseDir,
// sorted case-insensitively. A missing directory or any listing error
// yields an empty list.
func (l *Lister) List(baseDir string, week int) []string {
	files := []string{}
	dir := WeekDir(baseDir, week)

	isDir, err := afero.IsDir(l.Fs, filepath.FromSlash(dir))
	if err != nil || !isDir {
		return files
	}

	entries, err := afero.ReadDir(l.Fs, filepath.FromSlash(dir))
	if err != nil {
		return []string{}
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if ext == name || !AllowedExtensions[strings.ToLower(ext)] {
			continue
		}
		files = append(files, strings.ReplaceAll(dir+"/"+name, "\\", "/"))
	}

	sort.SliceStable(files, func(i, j int) bool {
		return strings.ToLower(files[i]) < strings.ToLower(files[j])
	})
	return files
}
