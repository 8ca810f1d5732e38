package core

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func text(s string) pgtype.Text { return pgtype.Text{String: s, Valid: true} }

func stock(n int) pgtype.Int4 { return pgtype.Int4{Int32: int32(n), Valid: true} }

func price(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

// product builds a catalog entry with the attributes the filter inspects.
func product(id, brand, gender string, qty int, families ...string) Product {
	return Product{
		Id:        id,
		BrandName: text(brand),
		Gender:    text(gender),
		Stock:     stock(qty),
		Families:  families,
	}
}

// numbered returns n products with ids "0".."n-1" and stock 100.
func numbered(n int) []Product {
	out := make([]Product, n)
	for i := range out {
		out[i] = product(strconv.Itoa(i), "Clinique", "Female", 100, "Skincare", "Female")
	}
	return out
}

type staticSource struct {
	products []Product
	err      error
}

func (staticSource) Name() string { return "static" }

func (s staticSource) Load(context.Context) ([]Product, error) {
	return s.products, s.err
}

func boolean(b bool) pgtype.Bool { return pgtype.Bool{Bool: b, Valid: true} }
