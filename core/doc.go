// Package core defines the interfaces shared by the fatls packages.
//
// Two families of interfaces live here:
//
//   - Handle (File + Dir) and Sink are what the presentation layer in package
//     fatprint consumes. A Handle is a single cursor over one entry; a Sink
//     receives rendered bytes in order.
//   - Store is the read-only provider contract that package handle builds
//     Handles on top of. Providers live in the billy and minio packages.
//
// # Design Philosophy
//
//   - Zero dependencies beyond the standard library and fatdate
//   - Small interfaces composed into larger contracts
//   - Stdlib compatibility: Store returns fs.File, fs.FileInfo and fs.DirEntry
//   - Optional capabilities are discovered with type assertions
//
// # Optional Capabilities
//
//	if attrs, ok := info.Sys().(core.Attributes); ok && attrs.Hidden() {
//	    // ...
//	}
//
// # Provider Implementations
//
//   - github.com/jmgilman/go/fatls/billy - go-billy local and in-memory stores
//   - github.com/jmgilman/go/fatls/minio - MinIO/S3 store
//   - github.com/jmgilman/go/fatls/fattest - in-memory Handle trees for tests
package core
