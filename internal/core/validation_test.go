package core

import (
	"reflect"
	"testing"
)

func TestValidateFields(t *testing.T) {
	p := Product{
		Id:        "1",
		BrandName: text("Lancome"),
		Tags:      []string{},
	}

	tests := []struct {
		name        string
		fields      []string
		wantValid   []string
		wantMissing []string
	}{
		{
			name:        "mixed selection keeps order",
			fields:      []string{"Price", "Id", "Gender", "BrandName"},
			wantValid:   []string{"Id", "BrandName"},
			wantMissing: []string{"Price", "Gender"},
		},
		{
			name:        "empty list is present",
			fields:      []string{"Tags", "Properties"},
			wantValid:   []string{"Tags"},
			wantMissing: []string{"Properties"},
		},
		{
			name:        "unknown ids are missing",
			fields:      []string{"Nope"},
			wantValid:   []string{},
			wantMissing: []string{"Nope"},
		},
		{
			name:        "empty selection",
			fields:      nil,
			wantValid:   []string{},
			wantMissing: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateFields(p, tt.fields)
			if !reflect.DeepEqual(got.Valid, tt.wantValid) {
				t.Errorf("Valid = %v, want %v", got.Valid, tt.wantValid)
			}
			if !reflect.DeepEqual(got.Missing, tt.wantMissing) {
				t.Errorf("Missing = %v, want %v", got.Missing, tt.wantMissing)
			}
			if got.AllValid() != (len(tt.wantMissing) == 0) {
				t.Errorf("AllValid() = %v", got.AllValid())
			}
		})
	}
}

func TestValidateFields_Partition(t *testing.T) {
	p := product("1", "Prada", "Male", 1, "Perfumes")
	fields := FieldIDs()

	got := ValidateFields(p, fields)
	if len(got.Valid)+len(got.Missing) != len(fields) {
		t.Errorf("partition sizes %d+%d != %d", len(got.Valid), len(got.Missing), len(fields))
	}
}
