package catalog

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/geodata-tools/registrant/pkg/registrant"
)

// ParseWorkspace extracts the release version triplet ("major,minor,bugfix")
// from a DEWorkspace definition.
func ParseWorkspace(definition string) (string, error) {
	var ws workspaceDef
	if err := decode(definition, &ws); err != nil {
		return "", wrapXMLError(err, "DEWorkspace")
	}
	return strings.Join([]string{ws.MajorVersion, ws.MinorVersion, ws.BugfixVersion}, ","), nil
}

// ParseDomain extracts a domain from a GPCodedValueDomain2 or GPRangeDomain2
// definition, classified by root tag. Absent optional elements resolve to
// empty strings (nil bounds for ranges), never to an error.
func ParseDomain(definition string) (*registrant.DomainInfo, error) {
	kind := Classify(definition)
	switch kind {
	case KindCodedValueDomain:
		return parseCodedValueDomain(definition)
	case KindRangeDomain:
		return parseRangeDomain(definition)
	default:
		tag, _ := RootTag(definition)
		return nil, &DefinitionError{
			Source:  tag,
			Message: fmt.Sprintf("root tag %q is not a domain definition", tag),
		}
	}
}

func parseCodedValueDomain(definition string) (*registrant.DomainInfo, error) {
	var def codedValueDomainDef
	if err := decode(definition, &def); err != nil {
		return nil, wrapXMLError(err, "GPCodedValueDomain2")
	}

	coded := make([]registrant.CodedValue, 0, len(def.CodedValues.Values))
	for _, cv := range def.CodedValues.Values {
		coded = append(coded, registrant.CodedValue{Code: cv.Code, Name: cv.Name})
	}

	return &registrant.DomainInfo{
		Name:        def.DomainName,
		Description: def.Description,
		Owner:       def.Owner,
		Type:        registrant.DomainCodedValue,
		FieldType:   def.FieldType,
		MergePolicy: def.MergePolicy,
		SplitPolicy: def.SplitPolicy,
		CodedValues: coded,
	}, nil
}

func parseRangeDomain(definition string) (*registrant.DomainInfo, error) {
	var def rangeDomainDef
	if err := decode(definition, &def); err != nil {
		return nil, wrapXMLError(err, "GPRangeDomain2")
	}

	info := &registrant.DomainInfo{
		Name:        def.DomainName,
		Description: def.Description,
		Owner:       def.Owner,
		Type:        registrant.DomainRange,
		FieldType:   def.FieldType,
		MergePolicy: def.MergePolicy,
		SplitPolicy: def.SplitPolicy,
	}

	// Both bounds must parse for the range to be usable; otherwise the
	// projection layer emits the empty-string placeholder.
	min, minOK := parseBound(def.MinValue)
	max, maxOK := parseBound(def.MaxValue)
	if minOK && maxOK {
		info.Min = &min
		info.Max = &max
	}

	return info, nil
}

// ParseTable extracts name and field list from a DETableInfo definition.
// Row count is a live query the caller performs separately.
func ParseTable(definition string) (*registrant.TableInfo, error) {
	var def tableDef
	if err := decode(definition, &def); err != nil {
		return nil, wrapXMLError(err, "DETableInfo")
	}
	return &registrant.TableInfo{
		Name:   def.Name,
		Fields: convertFields(def.Fields),
	}, nil
}

// ParseFeatureClass extracts name, fields, geometry type and spatial
// reference from a DEFeatureClassInfo definition.
func ParseFeatureClass(definition string) (*registrant.FeatureClassInfo, error) {
	var def featureClassDef
	if err := decode(definition, &def); err != nil {
		return nil, wrapXMLError(err, "DEFeatureClassInfo")
	}
	return &registrant.FeatureClassInfo{
		TableInfo: registrant.TableInfo{
			Name:   def.Name,
			Fields: convertFields(def.Fields),
		},
		GeometryType: def.ShapeType,
		ShapeField:   def.ShapeFieldName,
		WKID:         def.SpatialReference.WKID,
	}, nil
}

func decode(definition string, v interface{}) error {
	return xml.NewDecoder(strings.NewReader(definition)).Decode(v)
}

func parseBound(raw *string) (float64, bool) {
	if raw == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func convertFields(fields fieldsDef) []registrant.FieldInfo {
	converted := make([]registrant.FieldInfo, 0, len(fields.FieldArray.Fields))
	for _, f := range fields.FieldArray.Fields {
		converted = append(converted, registrant.FieldInfo{Name: f.Name, Type: f.Type})
	}
	return converted
}
