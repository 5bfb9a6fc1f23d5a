package registrant

import (
	"reflect"
	"testing"
)

func TestReleaseLabel(t *testing.T) {
	tests := []struct {
		triplet string
		want    string
	}{
		{"2,2,0", "9.2"},
		{"2,3,0", "9.3, 9.3.1"},
		{"3,0,0", "10.0, 10.1, 10.2"},
		{"3,0,1", "10.3 or later"},
		{"1,0,0", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ReleaseLabel(tt.triplet); got != tt.want {
			t.Errorf("ReleaseLabel(%q) = %q, want %q", tt.triplet, got, tt.want)
		}
	}
}

func TestKnownReleases_Sorted(t *testing.T) {
	want := []string{"2,2,0", "2,3,0", "3,0,0", "3,0,1"}
	if got := KnownReleases(); !reflect.DeepEqual(got, want) {
		t.Errorf("KnownReleases() = %v, want %v", got, want)
	}
}

func TestWorkspaceTypeLabel(t *testing.T) {
	tests := []struct {
		factory string
		want    string
	}{
		{"FileGDBWorkspaceFactory", "File geodatabase"},
		{"SdeWorkspaceFactory", "Enterprise geodatabase (SDE)"},
		{"AccessWorkspaceFactory", "Personal geodatabase"},
		// Enterprise ProgIDs carry version suffixes; substring match covers them.
		{"esriDataSourcesGDB.SdeWorkspaceFactory.1", "Enterprise geodatabase (SDE)"},
		{"sdeworkspacefactory", "Enterprise geodatabase (SDE)"},
		{"ShapefileWorkspaceFactory", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := WorkspaceTypeLabel(tt.factory); got != tt.want {
			t.Errorf("WorkspaceTypeLabel(%q) = %q, want %q", tt.factory, got, tt.want)
		}
	}
}

func TestEsriValueLabel(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"esriFieldTypeOID", "Object ID"},
		{"esriFieldTypeString", "String"},
		{"esriGeometryPolygon", "Polygon"},
		{"esriMPTDefaultValue", "Default value"},
		{"esriSPTGeometryRatio", "Geometry ratio"},
		// Both DomainType values map explicitly, not via passthrough.
		{string(DomainCodedValue), "Coded value"},
		{string(DomainRange), "Range"},
		// Unknown identifiers pass through unchanged.
		{"esriFieldTypeFutureThing", "esriFieldTypeFutureThing"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := EsriValueLabel(tt.raw); got != tt.want {
			t.Errorf("EsriValueLabel(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestProjectDomain_CodedValue(t *testing.T) {
	props := ProjectDomain(DomainInfo{
		Name:        "RoadClass",
		Description: "Road classification",
		Owner:       "sde",
		Type:        DomainCodedValue,
		FieldType:   "esriFieldTypeInteger",
		MergePolicy: "esriMPTDefaultValue",
		SplitPolicy: "esriSPTDuplicate",
		CodedValues: []CodedValue{
			{Code: "1", Name: "Motorway"},
			{Code: "2", Name: "Residential"},
		},
	})

	wantKeys := []string{
		"Name", "Description", "Owner", "Domain type", "Field type",
		"Merge policy", "Split policy", "Range", "Coded values",
	}
	if !reflect.DeepEqual(props.Keys(), wantKeys) {
		t.Fatalf("keys = %v, want %v", props.Keys(), wantKeys)
	}

	if v, _ := props.Get("Domain type"); v != "Coded value" {
		t.Errorf("Domain type = %v, want Coded value", v)
	}
	if v, _ := props.Get("Field type"); v != "Integer" {
		t.Errorf("Field type = %v, want Integer", v)
	}
	if v, _ := props.Get("Range"); v != "" {
		t.Errorf("Range = %v, want empty placeholder", v)
	}
	coded, _ := props.Get("Coded values")
	want := Props{{Key: "1", Value: "Motorway"}, {Key: "2", Value: "Residential"}}
	if !reflect.DeepEqual(coded, want) {
		t.Errorf("Coded values = %v, want %v", coded, want)
	}
}

func TestProjectDomain_Range(t *testing.T) {
	min, max := 0.0, 4808.72
	props := ProjectDomain(DomainInfo{
		Name: "Elevation",
		Type: DomainRange,
		Min:  &min,
		Max:  &max,
	})

	if v, _ := props.Get("Domain type"); v != "Range" {
		t.Errorf("Domain type = %v, want Range", v)
	}
	if v, _ := props.Get("Range"); !reflect.DeepEqual(v, [2]float64{0, 4808.72}) {
		t.Errorf("Range = %v, want [0 4808.72]", v)
	}
	if v, _ := props.Get("Coded values"); v != "" {
		t.Errorf("Coded values = %v, want empty placeholder", v)
	}
}

func TestProjectDomain_RangeWithoutBounds(t *testing.T) {
	props := ProjectDomain(DomainInfo{Name: "Partial", Type: DomainRange})
	if v, _ := props.Get("Range"); v != "" {
		t.Errorf("Range = %v, want empty placeholder for missing bounds", v)
	}
}

func TestProjectTable(t *testing.T) {
	props := ProjectTable(TableInfo{
		Name: "Owners",
		Fields: []FieldInfo{
			{Name: "OBJECTID", Type: "esriFieldTypeOID"},
			{Name: "NAME", Type: "esriFieldTypeString"},
		},
		RowCount: 42,
	})

	wantKeys := []string{"Name", "Field count", "Fields", "Row count"}
	if !reflect.DeepEqual(props.Keys(), wantKeys) {
		t.Fatalf("keys = %v, want %v", props.Keys(), wantKeys)
	}
	if v, _ := props.Get("Field count"); v != 2 {
		t.Errorf("Field count = %v, want 2", v)
	}
	fields, _ := props.Get("Fields")
	want := []string{"OBJECTID (Object ID)", "NAME (String)"}
	if !reflect.DeepEqual(fields, want) {
		t.Errorf("Fields = %v, want %v", fields, want)
	}
	if v, _ := props.Get("Row count"); v != int64(42) {
		t.Errorf("Row count = %v, want 42", v)
	}
}

func TestProjectFeatureClass(t *testing.T) {
	props := ProjectFeatureClass(FeatureClassInfo{
		TableInfo: TableInfo{
			Name:     "Roads",
			Fields:   []FieldInfo{{Name: "SHAPE", Type: "esriFieldTypeGeometry"}},
			RowCount: 7,
		},
		GeometryType:   "esriGeometryPolyline",
		WKID:           4326,
		FeatureDataset: "Transport",
	})

	wantKeys := []string{
		"Name", "Geometry type", "Spatial reference", "Field count",
		"Fields", "Row count", "Feature dataset",
	}
	if !reflect.DeepEqual(props.Keys(), wantKeys) {
		t.Fatalf("keys = %v, want %v", props.Keys(), wantKeys)
	}
	if v, _ := props.Get("Geometry type"); v != "Polyline" {
		t.Errorf("Geometry type = %v, want Polyline", v)
	}
	if v, _ := props.Get("Spatial reference"); v != "EPSG:4326" {
		t.Errorf("Spatial reference = %v, want EPSG:4326", v)
	}
	if v, _ := props.Get("Feature dataset"); v != "Transport" {
		t.Errorf("Feature dataset = %v, want Transport", v)
	}
}

func TestProjectFeatureClass_NoSpatialReference(t *testing.T) {
	props := ProjectFeatureClass(FeatureClassInfo{
		TableInfo: TableInfo{Name: "Unreferenced"},
	})
	if v, _ := props.Get("Spatial reference"); v != "" {
		t.Errorf("Spatial reference = %v, want empty placeholder", v)
	}
	if v, _ := props.Get("Feature dataset"); v != "" {
		t.Errorf("Feature dataset = %v, want empty string", v)
	}
}
