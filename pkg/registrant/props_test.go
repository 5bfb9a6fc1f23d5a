package registrant

import (
	"encoding/json"
	"testing"
)

func TestProps_GetSetKeys(t *testing.T) {
	var p Props
	p.Set("Name", "Roads")
	p.Set("Row count", int64(10))
	p.Set("Name", "Parcels")

	if got := len(p); got != 2 {
		t.Fatalf("len = %d, want 2 (Set must replace in place)", got)
	}

	value, ok := p.Get("Name")
	if !ok || value != "Parcels" {
		t.Errorf("Get(Name) = %v, %v; want Parcels, true", value, ok)
	}
	if _, ok := p.Get("Missing"); ok {
		t.Error("Get(Missing) reported present")
	}

	keys := p.Keys()
	if keys[0] != "Name" || keys[1] != "Row count" {
		t.Errorf("Keys() = %v, want [Name, Row count]", keys)
	}
}

func TestProps_MarshalJSON_PreservesOrder(t *testing.T) {
	p := Props{
		{Key: "Zebra", Value: 1},
		{Key: "Apple", Value: 2},
		{Key: "Mango", Value: 3},
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"Zebra":1,"Apple":2,"Mango":3}`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}
}

func TestProps_MarshalJSON_Nested(t *testing.T) {
	p := Props{
		{Key: "Name", Value: "RoadClass"},
		{Key: "Coded values", Value: Props{
			{Key: "2", Value: "Residential"},
			{Key: "1", Value: "Motorway"},
		}},
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"Name":"RoadClass","Coded values":{"2":"Residential","1":"Motorway"}}`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}
}

func TestProps_MarshalJSON_Empty(t *testing.T) {
	data, err := json.Marshal(Props{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("marshal = %s, want {}", data)
	}
}
