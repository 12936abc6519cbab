package fatprint

import (
	"github.com/jmgilman/go/fatls/core"
	"github.com/jmgilman/go/fatls/errors"
)

// List writes one line per child of dir in the store's enumeration order.
// Each line is indent spaces, then the modification timestamp (ListDate), the
// size field (ListSize), the name, a trailing '/' for directories and "\r\n".
// Hidden children are skipped unless ListHidden is set. With ListRecursive
// each sub-directory is listed right after its own line, indented by
// IndentStep more.
//
// Each child is closed before the next one is opened.
//
// List returns an error with errors.CodeNotADirectory, writing nothing, when
// dir is not a directory, and one with errors.CodeDirectoryRead when dir
// reports an enumeration failure. A failure while listing a sub-directory is
// logged and the remaining children are still listed.
func (p *Printer) List(w core.Sink, dir core.Handle, flags ListFlags, indent int) error {
	if !dir.IsDir() {
		p.logger.Debug("list on non-directory", "name", dir.Name())
		return errors.WithContext(
			errors.New(errors.CodeNotADirectory, "not a directory"),
			"name", dir.Name(),
		)
	}
	if indent < 0 {
		indent = 0
	}

	dir.Rewind()
	for {
		child, ok := dir.OpenNext()
		if !ok {
			break
		}
		if err := p.listEntry(w, child, flags, indent); err != nil {
			p.logger.Debug("sub-directory listing failed", "name", child.Name(), "error", err)
		}
		if err := child.Close(); err != nil {
			p.logger.Debug("close failed", "name", child.Name(), "error", err)
		}
	}

	if err := dir.Err(); err != nil {
		p.logger.Debug("directory read failed", "name", dir.Name(), "flags", flags.String(), "error", err)
		return errors.WithContextMap(
			errors.Wrap(err, errors.CodeDirectoryRead, "directory read failed"),
			map[string]any{"name": dir.Name(), "indent": indent},
		)
	}
	return nil
}

func (p *Printer) listEntry(w core.Sink, child core.Handle, flags ListFlags, indent int) error {
	if child.IsHidden() && !flags.Has(ListHidden) {
		return nil
	}

	for range indent {
		_ = w.WriteByte(' ')
	}
	if flags.Has(ListDate) {
		p.PrintModifyDateTime(w, child)
		_ = w.WriteByte(' ')
	}
	if flags.Has(ListSize) {
		p.PrintFileSize(w, child)
		_ = w.WriteByte(' ')
	}
	p.PrintName(w, child)
	if child.IsDir() {
		_ = w.WriteByte('/')
	}
	newline(w)

	if flags.Has(ListRecursive) && child.IsDir() {
		return p.List(w, child, flags, indent+IndentStep)
	}
	return nil
}
