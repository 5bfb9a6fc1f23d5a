// Package catalog parses the serialized XML object definitions stored in a
// geodatabase system catalog (the Definition column of GDB_Items / gdb_items).
//
// # Definition Format
//
// Every registered item carries one XML document whose root tag identifies the
// object class:
//
//	DEWorkspace          workspace metadata (schema version triplet)
//	GPCodedValueDomain2  coded-value attribute domain
//	GPRangeDomain2       range attribute domain
//	DETableInfo          non-spatial table
//	DEFeatureClassInfo   spatial dataset (feature class)
//
// Any other root tag present in the catalog belongs to object classes this
// package does not inspect (relationship classes, toolboxes, ...) and is
// ignored by scans.
//
// # Optional Fields
//
// Definitions written by different ArcGIS releases omit optional elements
// rather than writing empty ones. Parsing never fails on an absent optional
// element: string fields resolve to "" and range bounds to nil, matching the
// empty-string placeholder contract of the projection layer.
package catalog
