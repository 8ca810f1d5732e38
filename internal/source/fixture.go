package source

import (
	"context"
	"fmt"
	"strconv"

	"github.com/JonMunkholm/catalog-export/internal/core"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// DefaultImageBaseURL prefixes generated image URLs.
const DefaultImageBaseURL = "https://notelseit.beauty/novaengel/product/images/"

var (
	fixtureBrands = []string{
		"Adolfo Dominguez", "Clinique", "Lancome", "Shiseido", "L'Oreal", "Hugo Boss",
		"Estee Lauder", "Carolina Herrera", "Maybelline", "Biotherm", "Giorgio Armani",
		"Paco Rabanne", "Versace", "Prada", "Guerlain", "Clarins",
	}
	fixtureCategories    = []string{"Perfumes", "Skincare", "Cosmetics", "Haircare", "Hygiene", "Solar"}
	fixtureSubcategories = []string{"Fragrance", "Moisturizer", "Serum", "Mascara", "Lipstick", "EDP", "EDT", "Sunscreen"}
	fixtureGenders       = []string{"Male", "Female", "Unisex", "Kids"}
)

// FixtureBrands returns the brand names used by the generated catalog.
func FixtureBrands() []string { return append([]string(nil), fixtureBrands...) }

// FixtureCategories returns the category names used by the generated catalog.
func FixtureCategories() []string { return append([]string(nil), fixtureCategories...) }

// FixtureSubcategories returns the subcategory names used by the generated catalog.
func FixtureSubcategories() []string { return append([]string(nil), fixtureSubcategories...) }

// FixtureGenders returns the gender values used by the generated catalog.
func FixtureGenders() []string { return append([]string(nil), fixtureGenders...) }

// Fixture generates a deterministic demo catalog.
type Fixture struct {
	size         int
	imageBaseURL string
}

// NewFixture creates a generator for size products.
func NewFixture(size int, imageBaseURL string) *Fixture {
	return &Fixture{size: size, imageBaseURL: imageBaseURL}
}

func (f *Fixture) Name() string { return "fixture" }

// Load returns the generated catalog. Two loads yield equal catalogs.
func (f *Fixture) Load(ctx context.Context) ([]core.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return GenerateProducts(f.size, f.imageBaseURL), nil
}

// GenerateProducts builds n products cycling through the fixture brands,
// categories, subcategories and genders. An empty imageBaseURL selects
// DefaultImageBaseURL.
func GenerateProducts(n int, imageBaseURL string) []core.Product {
	if n < 0 {
		n = 0
	}
	if imageBaseURL == "" {
		imageBaseURL = DefaultImageBaseURL
	}
	products := make([]core.Product, n)
	for i := range products {
		products[i] = generateProduct(i, imageBaseURL)
	}
	return products
}

func generateProduct(i int, imageBaseURL string) core.Product {
	brand := fixtureBrands[i%len(fixtureBrands)]
	cat := fixtureCategories[i%len(fixtureCategories)]
	sub := fixtureSubcategories[i%len(fixtureSubcategories)]
	gender := fixtureGenders[i%len(fixtureGenders)]
	id := strconv.Itoa(10000 + i)

	ean := ("8410" + id + "000000")[:13]

	p := core.Product{
		Id:          id,
		EANs:        []string{ean},
		Description: text(fmt.Sprintf("%s %s Advanced Formula #%d", brand, sub, i+1)),
		Price:       amount(decimal.NewFromInt(int64(25 + i%250))),
		PVR:         amount(decimal.NewFromInt(int64(40 + i%300))),
		Stock:       pgtype.Int4{Int32: int32((i * 17) % 2000), Valid: true},
		BrandId:     text(strconv.Itoa(100 + i%50)),
		BrandName:   text(brand),
		LineaId:     text(fmt.Sprintf("L-%d", i)),
		LineaName:   text("Professional Series"),
		Gender:      text(gender),
		Families:    []string{cat, gender},
		IVA:         amount(decimal.NewFromInt(21)),
		// 0.05 + (i%30)/10
		Kgs:              amount(decimal.New(5, -2).Add(decimal.New(int64(i%30), -1))),
		Ancho:            amount(decimal.NewFromInt(50)),
		Alto:             amount(decimal.NewFromInt(120)),
		Fondo:            amount(decimal.NewFromInt(50)),
		Fecha:            text("2024-06-01"),
		Contenido:        text("100 ml"),
		Gama:             text("Collection 2025"),
		ItemId:           text("ITEM-" + id),
		Properties:       []string{"Long Lasting", "Premium Quality"},
		Tags:             []string{"Trending", "Limited Edition"},
		CompleteFamilies: []string{cat, sub, gender},
		Novedad:          pgtype.Bool{Bool: i%8 == 0, Valid: true},
		EsOferta:         pgtype.Bool{Bool: i%12 == 0, Valid: true},
		PaisFabricacion:  text("Spain"),
		Ingredientes:     text("Aqua, Alcohol Denat, Fragrance..."),
		NombreColor:      text("Natural"),
		CompleteDescription: text(fmt.Sprintf(
			"Full clinical description for %s %s. This product is designed for %s and belongs to the %s family.",
			brand, sub, gender, cat)),
		Image:       text(imageBaseURL + id + ".jpg"),
		Subfamilies: []string{sub},
	}

	// Only some products ship as sets or carry an offer end date.
	if i%10 == 0 {
		p.SetContent = text("3x100ml Set")
	}
	if i%12 == 0 {
		p.FechaFinalOferta = text("2025-12-31")
	}

	return p
}

func text(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func amount(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
