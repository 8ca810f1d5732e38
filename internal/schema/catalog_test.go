package schema

import (
	"encoding/csv"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/JonMunkholm/catalog-export/internal/core"
)

func TestCatalogColumns(t *testing.T) {
	if len(CatalogColumns) != core.FieldCount()+1 {
		t.Fatalf("CatalogColumns has %d entries, want %d", len(CatalogColumns), core.FieldCount()+1)
	}
	if !CatalogColumns[0].Required || CatalogColumns[0].Name != "Id" {
		t.Errorf("first column = %+v, want required Id", CatalogColumns[0])
	}
	if last := CatalogColumns[len(CatalogColumns)-1]; last.Name != SubfamiliesColumn {
		t.Errorf("last column = %s", last.Name)
	}
}

func TestNormalizeHeader(t *testing.T) {
	got := NormalizeHeader([]string{" id ", "BRANDNAME", `"stock"`, "Extra", ""})
	want := []string{"Id", "BrandName", "Stock", "Extra", "_col5"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeHeader() = %v, want %v", got, want)
	}
}

func TestCatalogRow_ToProduct(t *testing.T) {
	row := CatalogRow{
		Id:          " 10001 ",
		EANs:        "8410100010000|8410100010001",
		BrandName:   "Clinique",
		Price:       "25,90",
		Stock:       "17",
		Families:    "Skincare|Female",
		Novedad:     "yes",
		Subfamilies: "Serum",
		Tags:        "",
	}

	p := row.ToProduct()

	if p.Id != "10001" {
		t.Errorf("Id = %q", p.Id)
	}
	if len(p.EANs) != 2 || p.EANs[1] != "8410100010001" {
		t.Errorf("EANs = %v", p.EANs)
	}
	if !p.Price.Valid || p.Price.Decimal.String() != "25.9" {
		t.Errorf("Price = %+v", p.Price)
	}
	if p.StockLevel() != 17 {
		t.Errorf("Stock = %d", p.StockLevel())
	}
	if !p.Novedad.Valid || !p.Novedad.Bool {
		t.Errorf("Novedad = %+v", p.Novedad)
	}
	if p.Tags != nil || p.Description.Valid || p.IVA.Valid {
		t.Error("empty cells must be absent")
	}
	if !reflect.DeepEqual(p.Subfamilies, []string{"Serum"}) {
		t.Errorf("Subfamilies = %v", p.Subfamilies)
	}
}

func TestCatalogRow_Validate(t *testing.T) {
	if err := (CatalogRow{Id: "  "}).Validate(); err == nil {
		t.Error("blank Id should fail validation")
	}
	if err := (CatalogRow{Id: "1"}).Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func decode(t *testing.T, data string) ([]core.Product, error) {
	t.Helper()
	r := csv.NewReader(strings.NewReader(data))
	r.FieldsPerRecord = -1
	return DecodeProducts(r)
}

func TestDecodeProducts(t *testing.T) {
	data := "id,BrandName,Stock,Families,Unused\n" +
		"1,Prada,5,Perfumes|Male,x\n" +
		"\n" +
		"2,Versace\n"

	products, err := decode(t, data)
	if err != nil {
		t.Fatalf("DecodeProducts error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}
	if products[0].BrandName.String != "Prada" || products[0].StockLevel() != 5 {
		t.Errorf("product[0] = %+v", products[0])
	}
	if products[1].Stock.Valid || products[1].Families != nil {
		t.Errorf("short row should leave trailing attributes absent: %+v", products[1])
	}
}

func TestDecodeProducts_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty file", ""},
		{"missing id column", "BrandName\nPrada\n"},
		{"blank id", "Id,BrandName\n,Prada\n"},
		{"duplicate id", "Id,BrandName\n7,A\n7,B\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decode(t, tt.data)
			if !errors.Is(err, core.ErrInvalidCatalog) {
				t.Errorf("err = %v, want ErrInvalidCatalog", err)
			}
		})
	}
}

func TestDecodeProducts_DuplicateIdLine(t *testing.T) {
	data := "Id,BrandName\n7,A\n8,B\n 7 ,C\n"

	_, err := decode(t, data)
	if !errors.Is(err, core.ErrInvalidCatalog) {
		t.Fatalf("err = %v, want ErrInvalidCatalog", err)
	}
	if !strings.Contains(err.Error(), "line 4") || !strings.Contains(err.Error(), "first on line 2") {
		t.Errorf("err = %v, want line numbers of both rows", err)
	}
}

func TestDecodeProducts_KeepsQuotesInValues(t *testing.T) {
	data := "Id,Description\n" +
		"\"He said \"\"hi\"\"\",'Quoted'\n"

	products, err := decode(t, data)
	if err != nil {
		t.Fatalf("DecodeProducts error: %v", err)
	}
	if got := products[0].Id; got != `He said "hi"` {
		t.Errorf("Id = %q, want %q", got, `He said "hi"`)
	}
	if got := products[0].Description.String; got != "'Quoted'" {
		t.Errorf("Description = %q, want %q", got, "'Quoted'")
	}
}
