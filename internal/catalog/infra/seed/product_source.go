package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed products.yaml
var defaultProducts []byte

type productFile struct {
	Products []productRecord `yaml:"products"`
}

type productRecord struct {
	domain.Product `yaml:",inline"`
	Price          string `yaml:"price"`
}

// ProductSource reads the catalog from a YAML document. The zero value is not
// usable; build one with Embedded, FromFile or FromReader.
type ProductSource struct {
	data   []byte
	origin string
}

// Embedded returns the product table compiled into the binary.
func Embedded() *ProductSource {
	return &ProductSource{data: defaultProducts, origin: "embedded"}
}

func FromFile(path string) (*ProductSource, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return &ProductSource{data: b, origin: path}, nil
}

func FromReader(r io.Reader) (*ProductSource, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return &ProductSource{data: b, origin: "reader"}, nil
}

func (s *ProductSource) Origin() string { return s.origin }

func (s *ProductSource) Products(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var file productFile
	dec := yaml.NewDecoder(bytes.NewReader(s.data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", s.origin, err)
	}

	out := make([]domain.Product, 0, len(file.Products))
	for i, rec := range file.Products {
		price, err := decimal.NewFromString(rec.Price)
		if err != nil {
			return nil, fmt.Errorf("product %d (id %d): invalid price %q: %w", i, rec.ID, rec.Price, err)
		}
		p := rec.Product
		p.Price = price
		out = append(out, p)
	}
	return out, nil
}
