// Package registrant provides read-only introspection of Esri geodatabases.
//
// # Overview
//
// A Geodatabase accessor resolves descriptive metadata (release version,
// workspace type, attribute domains, tables and feature classes) from one of
// two interchangeable backends:
//
//   - enterprise: an enterprise geodatabase hosted on PostgreSQL, read through
//     the structured system catalog (gdb_items joined with gdb_itemtypes)
//   - filegdb: a mobile/file geodatabase in SQLite container format, read
//     through raw SQL over the internal GDB_Items system table
//
// The backend is chosen once, at construction. Every query method projects the
// backend's native results through a fixed label table into an ordered
// key/value structure (Props), so both backends produce output with identical
// key sets and key order for the same logical geodatabase.
//
// # Usage
//
// Backends live in internal packages and are wired by the CLI. Library-style
// use goes through the Backend interface:
//
//	gdb, err := registrant.NewGeodatabase(ctx, backend)
//	if err != nil {
//	    return err // backend-native error: target is not a valid geodatabase
//	}
//	defer gdb.Close()
//
//	props := gdb.GetPrettyProps()
//	domains, err := gdb.GetDomains(ctx)
//
// # Error Model
//
// Construction-time failures (unreadable or invalid target) propagate wrapped
// but unclassified. Per-item failures during table and feature-class listing
// are logged through the configured Logger and the offending item is skipped;
// one unreadable dataset does not abort the scan.
package registrant
