package catalog

import "errors"

var (
	// ErrUnknownColor color name or value is not one of Red, Green, Blue
	ErrUnknownColor = errors.New("catalog: unknown color")

	// ErrUnknownSize size name or value is not one of Small, Medium, Large
	ErrUnknownSize = errors.New("catalog: unknown size")

	// ErrUnsupportedFormat catalog file extension is not .yaml, .yml or .json
	ErrUnsupportedFormat = errors.New("catalog: unsupported format")
)
