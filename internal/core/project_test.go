package core

import (
	"encoding/json"
	"testing"
)

func TestProjectProduct_SentinelForMissing(t *testing.T) {
	p := Product{Id: "7"}

	rec := ProjectProduct(p, []string{"Id", "BrandName"})

	if len(rec) != 2 {
		t.Fatalf("len = %d, want 2", len(rec))
	}
	if rec[0] != (FieldValue{Field: "Id", Value: "7"}) {
		t.Errorf("rec[0] = %+v", rec[0])
	}
	if rec[1] != (FieldValue{Field: "BrandName", Value: NotAvailable}) {
		t.Errorf("rec[1] = %+v", rec[1])
	}
}

func TestProjectProduct_KeepsSelectionOrder(t *testing.T) {
	p := product("1", "Prada", "Male", 4)
	fields := []string{"Stock", "Bogus", "Id", "Gender"}

	rec := ProjectProduct(p, fields)

	got := rec.Fields()
	for i := range fields {
		if got[i] != fields[i] {
			t.Fatalf("Fields() = %v, want %v", got, fields)
		}
	}
	if v, _ := rec.Get("Bogus"); v != NotAvailable {
		t.Errorf("unknown field = %v, want sentinel", v)
	}
	if v, _ := rec.Get("Stock"); v != int64(4) {
		t.Errorf("Stock = %#v, want int64(4)", v)
	}
	if _, ok := rec.Get("Price"); ok {
		t.Error("Get on unselected field should report false")
	}
}

func TestProject_Deterministic(t *testing.T) {
	catalog := numbered(3)
	fields := FieldIDs()

	a, _ := json.Marshal(Project(catalog, fields))
	b, _ := json.Marshal(Project(catalog, fields))
	if string(a) != string(b) {
		t.Error("projection is not deterministic")
	}
}

func TestRecord_MarshalJSON(t *testing.T) {
	p := Product{
		Id:       "9",
		Price:    price("12.50"),
		Stock:    stock(3),
		EANs:     []string{},
		Families: []string{"Solar"},
	}

	out, err := json.Marshal(ProjectProduct(p, []string{"Price", "Id", "EANs", "Families", "Novedad", "Stock"}))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	want := `{"Price":12.5,"Id":"9","EANs":[],"Families":["Solar"],"Novedad":"N/A","Stock":3}`
	if string(out) != want {
		t.Errorf("json = %s, want %s", out, want)
	}
}
