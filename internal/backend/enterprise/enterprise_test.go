package enterprise

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/geodata-tools/registrant/internal/catalog"
	"github.com/geodata-tools/registrant/pkg/registrant"
)

func tableXML(name string) string {
	return fmt.Sprintf(`<DETableInfo>
  <Name>%s</Name>
  <Fields><FieldArray>
    <Field><Name>OBJECTID</Name><Type>esriFieldTypeOID</Type></Field>
  </FieldArray></Fields>
</DETableInfo>`, name)
}

func featureClassXML(name string) string {
	return fmt.Sprintf(`<DEFeatureClassInfo>
  <Name>%s</Name>
  <ShapeType>esriGeometryPolygon</ShapeType>
  <ShapeFieldName>SHAPE</ShapeFieldName>
  <Fields><FieldArray>
    <Field><Name>OBJECTID</Name><Type>esriFieldTypeOID</Type></Field>
    <Field><Name>SHAPE</Name><Type>esriFieldTypeGeometry</Type></Field>
  </FieldArray></Fields>
  <SpatialReference><WKID>3857</WKID></SpatialReference>
</DEFeatureClassInfo>`, name)
}

const codedDomainXML = `<GPCodedValueDomain2>
  <DomainName>LandUse</DomainName>
  <FieldType>esriFieldTypeInteger</FieldType>
  <CodedValues>
    <CodedValue><Name>Residential</Name><Code>1</Code></CodedValue>
    <CodedValue><Name>Industrial</Name><Code>2</Code></CodedValue>
  </CodedValues>
</GPCodedValueDomain2>`

// recordLogger captures Error calls for skip-and-log assertions.
type recordLogger struct {
	mu     sync.Mutex
	errors []string
}

func (l *recordLogger) Verbose(format string, args ...interface{}) {}
func (l *recordLogger) Info(format string, args ...interface{})    {}

func (l *recordLogger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

// countsFrom serves row counts from a fixed physical-name map; unknown names
// fail the way a missing data table would.
func countsFrom(counts map[string]int64) countFunc {
	return func(physicalName string) (int64, error) {
		count, ok := counts[physicalName]
		if !ok {
			return 0, fmt.Errorf("relation %s does not exist", physicalName)
		}
		return count, nil
	}
}

func fcItem(name, path string) catalogItem {
	return catalogItem{
		id:           uuid.New(),
		name:         name,
		physicalName: "sde." + name,
		path:         path,
		definition:   featureClassXML(name),
	}
}

func TestBuildFeatureClasses_NestedPrecedeRoot(t *testing.T) {
	// Catalog order is by item name; the listing must regroup by dataset.
	items := []catalogItem{
		fcItem("Lakes", `\Hydro\Lakes`),
		fcItem("Parcels", `\Admin\Parcels`),
		fcItem("Rivers", `\Hydro\Rivers`),
		fcItem("Roads", `\Roads`),
		fcItem("Addresses", `\Addresses`),
	}
	counts := map[string]int64{
		"sde.Lakes": 4, "sde.Parcels": 10, "sde.Rivers": 7,
		"sde.Roads": 2, "sde.Addresses": 1,
	}

	fcs := buildFeatureClasses(items, countsFrom(counts), &recordLogger{})

	wantOrder := []string{"Parcels", "Lakes", "Rivers", "Addresses", "Roads"}
	wantDatasets := []string{"Admin", "Hydro", "Hydro", "", ""}
	if len(fcs) != len(wantOrder) {
		t.Fatalf("got %d feature classes, want %d", len(fcs), len(wantOrder))
	}
	for i, fc := range fcs {
		if fc.Name != wantOrder[i] {
			t.Errorf("position %d: name = %q, want %q", i, fc.Name, wantOrder[i])
		}
		if fc.FeatureDataset != wantDatasets[i] {
			t.Errorf("%s: dataset = %q, want %q", fc.Name, fc.FeatureDataset, wantDatasets[i])
		}
	}
	if fcs[0].RowCount != 10 {
		t.Errorf("Parcels row count = %d, want 10", fcs[0].RowCount)
	}
	if fcs[0].WKID != 3857 {
		t.Errorf("Parcels WKID = %d, want 3857", fcs[0].WKID)
	}
}

func TestBuildFeatureClasses_SkipsUnreadableItems(t *testing.T) {
	broken := fcItem("Broken", `\Broken`)
	broken.definition = "<DEFeatureClassInfo><unclosed"
	uncounted := fcItem("Orphan", `\Orphan`)
	items := []catalogItem{broken, uncounted, fcItem("Roads", `\Roads`)}

	logger := &recordLogger{}
	fcs := buildFeatureClasses(items, countsFrom(map[string]int64{"sde.Roads": 2}), logger)

	if len(fcs) != 1 || fcs[0].Name != "Roads" {
		t.Fatalf("feature classes = %v, want only Roads", fcs)
	}
	if len(logger.errors) != 2 {
		t.Errorf("logged %d errors, want one per skipped item: %v", len(logger.errors), logger.errors)
	}
}

func TestBuildTables_CountsAndSkips(t *testing.T) {
	ghost := catalogItem{name: "Ghost", physicalName: "sde.Ghost", definition: tableXML("Ghost")}
	owners := catalogItem{
		id:           uuid.New(),
		name:         "Owners",
		physicalName: "sde.Owners",
		definition:   tableXML("Owners"),
	}

	logger := &recordLogger{}
	tables := buildTables([]catalogItem{ghost, owners},
		countsFrom(map[string]int64{"sde.Owners": 3}), logger)

	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	if tables[0].Name != "Owners" || tables[0].RowCount != 3 {
		t.Errorf("table = %+v, want Owners with 3 rows", tables[0])
	}
	if tables[0].ItemID != owners.id {
		t.Errorf("ItemID = %s, want the catalog uuid", tables[0].ItemID)
	}
	if len(logger.errors) != 1 {
		t.Errorf("logged %d errors, want 1 for the missing data table", len(logger.errors))
	}
}

func TestBuildDomains(t *testing.T) {
	item := catalogItem{id: uuid.New(), name: "LandUse", definition: codedDomainXML}

	domains, err := buildDomains([]catalogItem{item})
	if err != nil {
		t.Fatalf("buildDomains failed: %v", err)
	}
	if len(domains) != 1 {
		t.Fatalf("got %d domains, want 1", len(domains))
	}
	d := domains[0]
	if d.Name != "LandUse" || d.Type != registrant.DomainCodedValue {
		t.Errorf("domain = %+v, want coded-value LandUse", d)
	}
	if d.ItemID != item.id {
		t.Errorf("ItemID = %s, want the catalog uuid", d.ItemID)
	}
	if len(d.CodedValues) != 2 || d.CodedValues[0].Code != "1" {
		t.Errorf("coded values = %v, want the two source codes in order", d.CodedValues)
	}
}

func TestBuildDomains_MalformedDefinitionFails(t *testing.T) {
	_, err := buildDomains([]catalogItem{{name: "Bad", definition: "<GPRangeDomain2><oops"}})
	if err == nil {
		t.Fatal("buildDomains succeeded on a malformed definition, want error")
	}
	var defErr *catalog.DefinitionError
	if !errors.As(err, &defErr) {
		t.Errorf("error = %T, want *catalog.DefinitionError", err)
	}
}

func TestDatasetFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{`\Transport\Roads`, "Transport"},
		{`\Roads`, ""},
		{`\Hydro\Sub\Rivers`, "Hydro"},
		{``, ""},
		{`Roads`, ""},
	}
	for _, tt := range tests {
		if got := DatasetFromPath(tt.path); got != tt.want {
			t.Errorf("DatasetFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestQuoteQualified(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"sde.roads", `"sde"."roads"`},
		{"roads", `"roads"`},
		{`tricky"name`, `"tricky""name"`},
		{"owner.mixed.case", `"owner"."mixed"."case"`},
	}
	for _, tt := range tests {
		if got := QuoteQualified(tt.name); got != tt.want {
			t.Errorf("QuoteQualified(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}
