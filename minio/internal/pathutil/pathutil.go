// Package pathutil normalizes store paths into MinIO/S3 object keys.
package pathutil

import (
	"path"
	"strings"
)

// Normalize cleans a path, converts backslashes, and trims slashes.
// Returns "." for empty paths and the root.
func Normalize(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.Trim(path.Clean("/"+p), "/")
	if p == "" {
		return "."
	}
	return p
}

// NormalizePrefix normalizes a key prefix. Returns "" for the root.
func NormalizePrefix(prefix string) string {
	if p := Normalize(prefix); p != "." {
		return p
	}
	return ""
}

// JoinPath joins a prefix with a name to create a full S3 key.
// The root of an empty prefix is the empty key.
func JoinPath(prefix, name string) string {
	name = Normalize(name)
	switch {
	case name == ".":
		return prefix
	case prefix == "":
		return name
	}
	return prefix + "/" + name
}

// DirKey returns key with the trailing slash used for prefix listings.
// The root key stays empty.
func DirKey(key string) string {
	if key == "" || strings.HasSuffix(key, "/") {
		return key
	}
	return key + "/"
}
