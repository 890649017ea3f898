// Package catalog is a small product domain filtered with specifications.
package catalog

import (
	"github.com/go-leo/solid/specification"
)

// Product is an immutable catalog record.
type Product struct {
	Name  string `json:"name" yaml:"name" spec:"name"`
	Color Color  `json:"color" yaml:"color" spec:"color"`
	Size  Size   `json:"size" yaml:"size" spec:"size"`
}

var (
	NameOf  = specification.NewField("name", func(p Product) string { return p.Name })
	ColorOf = specification.NewField("color", func(p Product) Color { return p.Color })
	SizeOf  = specification.NewField("size", func(p Product) Size { return p.Size })
)

func NameIs(name string) specification.Specification[Product] {
	return NameOf.Equal(name)
}

func ColorIs(color Color) specification.Specification[Product] {
	return ColorOf.Equal(color)
}

func SizeIs(size Size) specification.Specification[Product] {
	return SizeOf.Equal(size)
}

// Demo returns a fresh copy of the sample products.
func Demo() []Product {
	return []Product{
		{Name: "Apple", Color: Green, Size: Small},
		{Name: "Pear", Color: Green, Size: Medium},
		{Name: "Jackfruit", Color: Blue, Size: Large},
		{Name: "Tree", Color: Blue, Size: Medium},
		{Name: "House", Color: Red, Size: Large},
		{Name: "Car", Color: Red, Size: Large},
	}
}
