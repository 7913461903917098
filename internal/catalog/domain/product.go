package domain

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryIran      Category = "Iran"
	CategoryCaribbean Category = "Caribbean"
	CategoryTaiwanese Category = "Taiwanese"
)

// Categories is the fixed set a product may belong to.
var Categories = []Category{CategoryIran, CategoryCaribbean, CategoryTaiwanese}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Product struct {
	ID          int             `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Category    Category        `json:"category" yaml:"category"`
	Image       string          `json:"img" yaml:"img"`
	Description string          `json:"description" yaml:"description"`
	Price       decimal.Decimal `json:"price" yaml:"-"`
	MadeBy      string          `json:"madeBy" yaml:"madeBy"`
	Stock       int             `json:"stock" yaml:"stock"`
	Tags        []string        `json:"tags" yaml:"tags"`
}
