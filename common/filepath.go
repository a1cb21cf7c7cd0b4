package common

import (
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
)

// FilePathClean is a combination of filepath.Clean and filepath.ToSlash
//
// Example:
//
//	C:\H\ -> C:/H
func FilePathClean(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

func FilePathToURI(path string) string {
	path = FilePathClean(path)
	if runtime.GOOS == "windows" {
		return "file:///" + url.PathEscape(path)
	}
	return "file://" + (&url.URL{Path: path}).EscapedPath()
}

// URIToFilePath converts a file:// URI into a filesystem path.
func URIToFilePath(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", err
	}
	p := u.Path
	if runtime.GOOS == "windows" {
		p = strings.TrimPrefix(p, "/")
	}
	return filepath.FromSlash(p), nil
}
