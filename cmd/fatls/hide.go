package main

import (
	"io/fs"

	"github.com/gobwas/glob"

	"github.com/jmgilman/go/fatls/errors"
	"github.com/jmgilman/go/fatls/handle"
)

// hiddenFunc extends handle.DefaultHidden with name patterns. Patterns use
// glob syntax: *, ?, [abc] and {a,b}.
func hiddenFunc(patterns []string) (handle.HiddenFunc, error) {
	if len(patterns) == 0 {
		return handle.DefaultHidden, nil
	}

	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.WithContext(
				errors.Wrap(err, errors.CodeInvalidInput, "invalid hide pattern"),
				"pattern", p,
			)
		}
		globs = append(globs, g)
	}

	return func(name string, info fs.FileInfo) bool {
		if handle.DefaultHidden(name, info) {
			return true
		}
		for _, g := range globs {
			if g.Match(name) {
				return true
			}
		}
		return false
	}, nil
}
