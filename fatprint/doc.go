// Package fatprint renders directory listings, entry fields and hex dumps of
// a file store to a byte sink.
//
// All reads go through a core.Handle and all output goes through a
// core.Sink. Output is written as it is produced, one field or byte at a
// time; nothing is buffered beyond a single line's text column. Lines end in
// "\r\n".
//
// Usage:
//
//	p := fatprint.New()
//	var out bytes.Buffer
//
//	// List a directory tree with sizes and dates.
//	if err := p.List(&out, root, fatprint.ListSize|fatprint.ListDate|fatprint.ListRecursive, 0); err != nil {
//	    return err
//	}
//
//	// Dump the first 64 bytes of a file.
//	p.Dump(&out, file, 0, 64)
//
// # Errors
//
// List fails with errors.CodeNotADirectory when given a file and with
// errors.CodeDirectoryRead when the store reports an enumeration failure.
// Dump and the field printers never fail: an unreadable range or missing
// timestamp renders as empty output. Sink write errors are not reported;
// use a sink that records them, such as *bufio.Writer, and check it after
// the call.
//
// # Thread Safety
//
// A Printer holds only immutable configuration and is safe for concurrent
// use. Handles are not; never share one Handle between concurrent calls.
package fatprint
