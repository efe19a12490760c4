// Package filestore resolves file data ids and asset paths to each other.
//
// # Overview
//
// Model assets reference each other by numeric file data id rather than by
// path. A Storage turns the listing files found in one mappings directory
// into an in-memory index that answers three questions:
//
//   - ByID: which path does id N name?
//   - ByPath: which id does this path have? Separator style and ASCII case
//     are ignored ("World\Foo.M2" finds "world/foo.m2").
//   - ByPartialPath: which record's path contains this substring? Case is
//     significant here; separators are not.
//
// # Listings
//
// Every *.csv and *.txt file (extension case-insensitive) directly inside the
// directory is read; subdirectories are not visited. See package listfile for
// the line format. Files are processed in lexical name order.
//
// # Uniqueness
//
// Ids and path keys are unique. When a listing line reuses an id that is
// already taken, or a path whose key is already taken, the line is dropped,
// a warning is logged with both entries, and the first entry wins. A line is
// never visible under only one of its keys.
//
// AddRecord is the exception: it is a trusted insert that replaces whatever
// currently holds the id or the path key. Replaced records are removed
// completely so the two keys stay consistent.
//
// # Lifecycle
//
// A Storage is empty until its first query. The first query loads every
// listing; later queries use the built index directly. Loading is a no-op
// once the index holds records.
//
//	Empty ──query──▶ Loading ──▶ Loaded
//	                    │
//	                    └──(directory missing)──▶ Failed
//
// Failed is sticky: queries return nothing without touching the file system
// until ResetLoadFailed is called. Registry.Get resets it automatically so
// each fresh request retries. SetDirectory clears the index.
//
// # Diagnostics
//
// Nothing in this package is fatal. Problems are reported through the
// configured logger.Logger and collected in the LoadReport returned by
// Report. Malformed lines are counted but never reported individually.
//
// # Registry
//
// A Registry hands out one Storage per mappings directory:
//
//	reg := filestore.NewRegistry(filestore.WithLogger(log))
//	st := reg.Get(cfg.MappingsPath())
//	if rec, ok := st.ByID(189077); ok {
//	    fmt.Println(rec.Path)
//	}
//
// # Thread Safety
//
// Storage instances are not thread-safe, including the lazy load triggered by
// queries. Callers must synchronize access externally. Registry.Get and
// Registry.Clear may be called concurrently.
package filestore
