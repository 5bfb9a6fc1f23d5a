package catalog

import "encoding/xml"

// The structs below map the subset of the esri definition documents this
// package inspects. Optional elements use pointer types where absence must be
// distinguishable from an empty value.

type workspaceDef struct {
	XMLName       xml.Name `xml:"DEWorkspace"`
	MajorVersion  string   `xml:"MajorVersion"`
	MinorVersion  string   `xml:"MinorVersion"`
	BugfixVersion string   `xml:"BugfixVersion"`
}

type codedValueDomainDef struct {
	XMLName     xml.Name `xml:"GPCodedValueDomain2"`
	DomainName  string   `xml:"DomainName"`
	FieldType   string   `xml:"FieldType"`
	MergePolicy string   `xml:"MergePolicy"`
	SplitPolicy string   `xml:"SplitPolicy"`
	Description string   `xml:"Description"`
	Owner       string   `xml:"Owner"`
	CodedValues struct {
		Values []codedValueDef `xml:"CodedValue"`
	} `xml:"CodedValues"`
}

type codedValueDef struct {
	Name string `xml:"Name"`
	Code string `xml:"Code"`
}

type rangeDomainDef struct {
	XMLName     xml.Name `xml:"GPRangeDomain2"`
	DomainName  string   `xml:"DomainName"`
	FieldType   string   `xml:"FieldType"`
	MergePolicy string   `xml:"MergePolicy"`
	SplitPolicy string   `xml:"SplitPolicy"`
	Description string   `xml:"Description"`
	Owner       string   `xml:"Owner"`
	MinValue    *string  `xml:"MinValue"`
	MaxValue    *string  `xml:"MaxValue"`
}

type tableDef struct {
	XMLName xml.Name  `xml:"DETableInfo"`
	Name    string    `xml:"Name"`
	Fields  fieldsDef `xml:"Fields"`
}

type featureClassDef struct {
	XMLName          xml.Name  `xml:"DEFeatureClassInfo"`
	Name             string    `xml:"Name"`
	Fields           fieldsDef `xml:"Fields"`
	ShapeType        string    `xml:"ShapeType"`
	ShapeFieldName   string    `xml:"ShapeFieldName"`
	SpatialReference struct {
		WKID int `xml:"WKID"`
	} `xml:"SpatialReference"`
}

type fieldsDef struct {
	FieldArray struct {
		Fields []fieldDef `xml:"Field"`
	} `xml:"FieldArray"`
}

type fieldDef struct {
	Name string `xml:"Name"`
	Type string `xml:"Type"`
}
