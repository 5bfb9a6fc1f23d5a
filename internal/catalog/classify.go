package catalog

import (
	"encoding/xml"
	"strings"
)

// ItemKind classifies a catalog definition by its XML root tag.
type ItemKind string

const (
	KindUnknown          ItemKind = ""
	KindWorkspace        ItemKind = "workspace"
	KindCodedValueDomain ItemKind = "coded_value_domain"
	KindRangeDomain      ItemKind = "range_domain"
	KindTable            ItemKind = "table"
	KindFeatureClass     ItemKind = "feature_class"
)

// kindByTag is the state-free root-tag classification table.
var kindByTag = map[string]ItemKind{
	"DEWorkspace":         KindWorkspace,
	"GPCodedValueDomain2": KindCodedValueDomain,
	"GPRangeDomain2":      KindRangeDomain,
	"DETableInfo":         KindTable,
	"DEFeatureClassInfo":  KindFeatureClass,
}

// IsDomain reports whether the kind is one of the two domain kinds.
func (k ItemKind) IsDomain() bool {
	return k == KindCodedValueDomain || k == KindRangeDomain
}

// Classify reads the root tag of a serialized definition and maps it to an
// ItemKind. Definitions with unrecognized root tags classify as KindUnknown
// and are skipped by catalog scans; malformed XML also classifies as
// KindUnknown rather than failing, because scans walk every row of the system
// table and most rows hold object classes outside our interest.
func Classify(definition string) ItemKind {
	tag, err := RootTag(definition)
	if err != nil {
		return KindUnknown
	}
	return kindByTag[tag]
}

// RootTag returns the local name of the first start element of the document.
func RootTag(definition string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(definition))
	for {
		token, err := decoder.Token()
		if err != nil {
			return "", wrapXMLError(err, "")
		}
		if start, ok := token.(xml.StartElement); ok {
			return start.Name.Local, nil
		}
	}
}
