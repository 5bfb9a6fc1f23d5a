package registrant

import (
	"fmt"
	"sort"
	"strings"
)

// releaseLabels maps the workspace definition version triplet
// (major,minor,bugfix) to the ArcGIS release line that writes it.
var releaseLabels = map[string]string{
	"2,2,0": "9.2",
	"2,3,0": "9.3, 9.3.1",
	"3,0,0": "10.0, 10.1, 10.2",
	"3,0,1": "10.3 or later",
}

// workspaceTypeLabels maps workspace factory identifiers to storage variant
// labels. Matching is case-insensitive substring containment, because
// enterprise factories carry version suffixes in their ProgIDs.
var workspaceTypeLabels = map[string]string{
	"accessworkspacefactory":  "Personal geodatabase",
	"filegdbworkspacefactory": "File geodatabase",
	"sdeworkspacefactory":     "Enterprise geodatabase (SDE)",
}

// esriValueLabels maps raw esri enum identifiers from system-catalog
// definitions to display values. Unknown identifiers pass through unchanged.
var esriValueLabels = map[string]string{
	// Domain types, keyed by DomainType value
	"CodedValue": "Coded value",
	"Range":      "Range",

	// Field types
	"esriFieldTypeSmallInteger": "Small integer",
	"esriFieldTypeInteger":      "Integer",
	"esriFieldTypeSingle":       "Single",
	"esriFieldTypeDouble":       "Double",
	"esriFieldTypeString":       "String",
	"esriFieldTypeDate":         "Date",
	"esriFieldTypeOID":          "Object ID",
	"esriFieldTypeGeometry":     "Geometry",
	"esriFieldTypeBlob":         "Blob",
	"esriFieldTypeRaster":       "Raster",
	"esriFieldTypeGUID":         "GUID",
	"esriFieldTypeGlobalID":     "Global ID",
	"esriFieldTypeXML":          "XML",

	// Merge policies
	"esriMPTDefaultValue": "Default value",
	"esriMPTSumValues":    "Sum values",
	"esriMPTAreaWeighted": "Area weighted",

	// Split policies
	"esriSPTDefaultValue":  "Default value",
	"esriSPTDuplicate":     "Duplicate",
	"esriSPTGeometryRatio": "Geometry ratio",

	// Geometry types
	"esriGeometryPoint":      "Point",
	"esriGeometryMultipoint": "Multipoint",
	"esriGeometryPolyline":   "Polyline",
	"esriGeometryPolygon":    "Polygon",
	"esriGeometryMultiPatch": "MultiPatch",
}

// ReleaseLabel resolves a version triplet to its release label, or "" when
// the triplet is unknown.
func ReleaseLabel(triplet string) string {
	return releaseLabels[triplet]
}

// KnownReleases returns the recognized version triplets in sorted order.
func KnownReleases() []string {
	triplets := make([]string, 0, len(releaseLabels))
	for t := range releaseLabels {
		triplets = append(triplets, t)
	}
	sort.Strings(triplets)
	return triplets
}

// WorkspaceTypeLabel resolves a workspace factory identifier to its storage
// variant label, or "" when the factory is not recognized.
func WorkspaceTypeLabel(factory string) string {
	lowered := strings.ToLower(factory)
	for key, label := range workspaceTypeLabels {
		if strings.Contains(lowered, key) {
			return label
		}
	}
	return ""
}

// EsriValueLabel resolves a raw esri enum identifier to its display value.
// Identifiers without a mapping pass through unchanged; the empty string
// stays empty (the placeholder for absent optional fields).
func EsriValueLabel(raw string) string {
	if label, ok := esriValueLabels[raw]; ok {
		return label
	}
	return raw
}

// ProjectDomain projects a domain into its fixed ordered label set. Both
// backends funnel through this single projection, which is what guarantees
// identical key sets and key order regardless of origin.
func ProjectDomain(d DomainInfo) Props {
	var rangeValue interface{} = ""
	if d.Min != nil && d.Max != nil {
		rangeValue = [2]float64{*d.Min, *d.Max}
	}

	var codedValues interface{} = ""
	if d.Type == DomainCodedValue {
		coded := make(Props, 0, len(d.CodedValues))
		for _, cv := range d.CodedValues {
			coded = append(coded, Prop{Key: cv.Code, Value: cv.Name})
		}
		codedValues = coded
	}

	return Props{
		{Key: "Name", Value: d.Name},
		{Key: "Description", Value: d.Description},
		{Key: "Owner", Value: d.Owner},
		{Key: "Domain type", Value: EsriValueLabel(string(d.Type))},
		{Key: "Field type", Value: EsriValueLabel(d.FieldType)},
		{Key: "Merge policy", Value: EsriValueLabel(d.MergePolicy)},
		{Key: "Split policy", Value: EsriValueLabel(d.SplitPolicy)},
		{Key: "Range", Value: rangeValue},
		{Key: "Coded values", Value: codedValues},
	}
}

// ProjectTable projects a table into its fixed ordered label set.
func ProjectTable(t TableInfo) Props {
	return Props{
		{Key: "Name", Value: t.Name},
		{Key: "Field count", Value: len(t.Fields)},
		{Key: "Fields", Value: fieldSummary(t.Fields)},
		{Key: "Row count", Value: t.RowCount},
	}
}

// ProjectFeatureClass projects a feature class into its fixed ordered label
// set. The "Feature dataset" key is always present; its value is "" for
// root-level feature classes and on backends without dataset membership.
func ProjectFeatureClass(fc FeatureClassInfo) Props {
	return Props{
		{Key: "Name", Value: fc.Name},
		{Key: "Geometry type", Value: EsriValueLabel(fc.GeometryType)},
		{Key: "Spatial reference", Value: wkidLabel(fc.WKID)},
		{Key: "Field count", Value: len(fc.Fields)},
		{Key: "Fields", Value: fieldSummary(fc.Fields)},
		{Key: "Row count", Value: fc.RowCount},
		{Key: "Feature dataset", Value: fc.FeatureDataset},
	}
}

func fieldSummary(fields []FieldInfo) []string {
	summary := make([]string, len(fields))
	for i, f := range fields {
		summary[i] = fmt.Sprintf("%s (%s)", f.Name, EsriValueLabel(f.Type))
	}
	return summary
}

func wkidLabel(wkid int) string {
	if wkid == 0 {
		return ""
	}
	return fmt.Sprintf("EPSG:%d", wkid)
}
