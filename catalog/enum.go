package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

type Color int

const (
	Red Color = iota + 1
	Green
	Blue
)

var colorNames = map[Color]string{
	Red:   "red",
	Green: "green",
	Blue:  "blue",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "Color(" + strconv.Itoa(int(c)) + ")"
}

func (c Color) MarshalText() ([]byte, error) {
	name, ok := colorNames[c]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColor, int(c))
	}
	return []byte(name), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	color, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = color
	return nil
}

// ParseColor parses a color name, ignoring case.
func ParseColor(s string) (Color, error) {
	for color, name := range colorNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return color, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

type Size int

const (
	Small Size = iota + 1
	Medium
	Large
)

var sizeNames = map[Size]string{
	Small:  "small",
	Medium: "medium",
	Large:  "large",
}

func (s Size) String() string {
	if name, ok := sizeNames[s]; ok {
		return name
	}
	return "Size(" + strconv.Itoa(int(s)) + ")"
}

func (s Size) MarshalText() ([]byte, error) {
	name, ok := sizeNames[s]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSize, int(s))
	}
	return []byte(name), nil
}

func (s *Size) UnmarshalText(text []byte) error {
	size, err := ParseSize(string(text))
	if err != nil {
		return err
	}
	*s = size
	return nil
}

// ParseSize parses a size name, ignoring case.
func ParseSize(s string) (Size, error) {
	for size, name := range sizeNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return size, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSize, s)
}
