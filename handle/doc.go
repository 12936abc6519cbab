// Package handle adapts any core.Store to the core.Handle cursor consumed
// by fatprint.
//
// An Entry is opened on a path and carries that entry's metadata. Files are
// read through a lazily opened, buffered stream; directories enumerate their
// children on demand:
//
//	root, err := handle.Open(store, "/")
//	if err != nil {
//	    return err
//	}
//	defer root.Close()
//	err = fatprint.New().List(os.Stdout, root, fatprint.ListSize, 0)
//
// Timestamps come from fs.FileInfo.ModTime and, when FileInfo.Sys()
// implements core.Times, from its access and creation times. The hidden
// attribute comes from core.Attributes, or from a leading dot in the name.
//
// Entries are not safe for concurrent use.
package handle
