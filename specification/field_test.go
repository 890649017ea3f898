package specification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testShade int

const (
	testLight testShade = iota + 1
	testDark
)

func (s *testShade) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "light":
		*s = testLight
	case "dark":
		*s = testDark
	default:
		return fmt.Errorf("unknown shade %q", text)
	}
	return nil
}

type testAudit struct {
	Owner string
	Rev   int
}

type testItem struct {
	*testAudit
	Name    string    `spec:"name"`
	Shade   testShade `spec:"shade"`
	Weight  uint8
	Label   any
	Tags    []string
	Secret  string `spec:"-"`
	private string
}

type testNested struct {
	testItem
	Name string
}

func TestField(t *testing.T) {
	ctx := context.Background()
	name := NewField("name", func(t testItem) string { return t.Name })
	item := testItem{Name: "apple"}

	assert.Equal(t, "name", name.Name())
	assert.Equal(t, "apple", name.Get(item))
	assert.True(t, name.Equal("apple").IsSatisfiedBy(ctx, item))
	assert.False(t, name.Equal("pear").IsSatisfiedBy(ctx, item))

	weight := Equal(func(t testItem) uint8 { return t.Weight }, 3)
	assert.True(t, weight.IsSatisfiedBy(ctx, testItem{Weight: 3}))
	assert.False(t, weight.IsSatisfiedBy(ctx, testItem{Weight: 4}))
}

func TestFieldEqual(t *testing.T) {
	ctx := context.Background()
	item := testItem{
		testAudit: &testAudit{Owner: "ops", Rev: 2},
		Name:      "apple",
		Shade:     testDark,
		Weight:    3,
		Label:     "fresh",
	}

	cases := []struct {
		name   string
		field  string
		target any
		want   bool
	}{
		{name: "tag label", field: "name", target: "apple", want: true},
		{name: "tag label mismatch", field: "name", target: "pear", want: false},
		{name: "case folded", field: "NAME", target: "apple", want: true},
		{name: "text unmarshaler", field: "shade", target: "dark", want: true},
		{name: "typed target", field: "shade", target: testLight, want: false},
		{name: "numeric conversion", field: "shade", target: 2, want: true},
		{name: "untagged field", field: "Weight", target: 3, want: true},
		{name: "interface field", field: "Label", target: "fresh", want: true},
		{name: "interface field other type", field: "Label", target: 1, want: false},
		{name: "promoted field", field: "owner", target: "ops", want: true},
		{name: "promoted field mismatch", field: "Rev", target: 3, want: false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec, err := FieldEqual[testItem](c.field, c.target)
			require.NoError(t, err)
			assert.Equal(t, c.want, spec.IsSatisfiedBy(ctx, item))
		})
	}
}

func TestFieldEqual_Pointer(t *testing.T) {
	ctx := context.Background()
	spec, err := FieldEqual[*testItem]("name", "apple")
	require.NoError(t, err)

	assert.True(t, spec.IsSatisfiedBy(ctx, &testItem{Name: "apple"}))
	assert.False(t, spec.IsSatisfiedBy(ctx, nil))

	owner, err := FieldEqual[*testItem]("owner", "ops")
	require.NoError(t, err)
	assert.False(t, owner.IsSatisfiedBy(ctx, &testItem{Name: "apple"}), "nil embedded pointer")
}

func TestFieldEqual_NilTarget(t *testing.T) {
	ctx := context.Background()
	spec, err := FieldEqual[testItem]("Label", nil)
	require.NoError(t, err)

	assert.True(t, spec.IsSatisfiedBy(ctx, testItem{}))
	assert.False(t, spec.IsSatisfiedBy(ctx, testItem{Label: "fresh"}))
	assert.False(t, spec.IsSatisfiedBy(ctx, testItem{Label: []string{"x"}}))
}

func TestFieldEqual_Shadowed(t *testing.T) {
	spec, err := FieldEqual[testNested]("name", "outer")
	require.NoError(t, err)

	rec := testNested{Name: "outer", testItem: testItem{Name: "inner"}}
	assert.True(t, spec.IsSatisfiedBy(context.Background(), rec))
}

type testLeft struct {
	Owner string
	Left  int
}

type testRight struct {
	Owner string
	Right int
}

type testPair struct {
	testLeft
	testRight
	Kind string
}

func TestFieldEqual_Ambiguous(t *testing.T) {
	_, err := FieldEqual[testPair]("owner", "ops")
	assert.ErrorIs(t, err, ErrInvalidField)

	_, err = FieldEqual[testPair]("Owner", "ops")
	assert.ErrorIs(t, err, ErrInvalidField)

	rec := testPair{testLeft: testLeft{Owner: "a", Left: 1}, testRight: testRight{Owner: "b", Right: 2}, Kind: "k"}
	for field, target := range map[string]any{"left": 1, "right": 2, "kind": "k"} {
		spec, err := FieldEqual[testPair](field, target)
		require.NoError(t, err, field)
		assert.True(t, spec.IsSatisfiedBy(context.Background(), rec), field)
	}
}

func TestFieldEqual_ExactLabelWins(t *testing.T) {
	type row struct {
		Title string `spec:"name"`
		Name  string `spec:"label"`
	}
	spec, err := FieldEqual[row]("name", "x")
	require.NoError(t, err)
	assert.True(t, spec.IsSatisfiedBy(context.Background(), row{Title: "x", Name: "y"}))
}

func TestFieldEqual_TagKey(t *testing.T) {
	type row struct {
		Title string `db:"title"`
	}
	spec, err := FieldEqual[row]("title", "x", TagKey("db"), NameComparer(func(t, s string) bool { return t == s }))
	require.NoError(t, err)
	assert.True(t, spec.IsSatisfiedBy(context.Background(), row{Title: "x"}))

	_, err = FieldEqual[row]("TITLE", "x", TagKey("db"), NameComparer(func(t, s string) bool { return t == s }))
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestFieldEqual_Errors(t *testing.T) {
	cases := []struct {
		name   string
		build  func() error
		target error
		code   Code
	}{
		{
			name:   "unknown field",
			build:  func() error { _, err := FieldEqual[testItem]("colour", "red"); return err },
			target: ErrInvalidField,
			code:   InvalidField,
		},
		{
			name:   "ignored field",
			build:  func() error { _, err := FieldEqual[testItem]("Secret", "x"); return err },
			target: ErrInvalidField,
			code:   InvalidField,
		},
		{
			name:   "unexported field",
			build:  func() error { _, err := FieldEqual[testItem]("private", "x"); return err },
			target: ErrInvalidField,
			code:   InvalidField,
		},
		{
			name:   "non struct record",
			build:  func() error { _, err := FieldEqual[string]("name", "x"); return err },
			target: ErrUnsupportedType,
			code:   UnsupportedType,
		},
		{
			name:   "slice field",
			build:  func() error { _, err := FieldEqual[testItem]("Tags", "x"); return err },
			target: ErrIncomparableField,
			code:   IncomparableField,
		},
		{
			name:   "wrong kind",
			build:  func() error { _, err := FieldEqual[testItem]("name", 1); return err },
			target: ErrMismatchedValue,
			code:   MismatchedValue,
		},
		{
			name:   "overflow",
			build:  func() error { _, err := FieldEqual[testItem]("Weight", 300); return err },
			target: ErrMismatchedValue,
			code:   MismatchedValue,
		},
		{
			name:   "lossy float",
			build:  func() error { _, err := FieldEqual[testItem]("Weight", 1.5); return err },
			target: ErrMismatchedValue,
			code:   MismatchedValue,
		},
		{
			name:   "unparsable text",
			build:  func() error { _, err := FieldEqual[testItem]("shade", "grey"); return err },
			target: ErrMismatchedValue,
			code:   MismatchedValue,
		},
		{
			name:   "nil for value field",
			build:  func() error { _, err := FieldEqual[testItem]("name", nil); return err },
			target: ErrMismatchedValue,
			code:   MismatchedValue,
		},
		{
			name:   "incomparable target",
			build:  func() error { _, err := FieldEqual[testItem]("Label", []int{1}); return err },
			target: ErrMismatchedValue,
			code:   MismatchedValue,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.build()
			require.Error(t, err)
			assert.ErrorIs(t, err, c.target)
			var specErr Error
			require.True(t, errors.As(err, &specErr))
			assert.Equal(t, c.code, specErr.Code)
			assert.NotEmpty(t, specErr.Error())
		})
	}
}

func TestMapFieldEqual(t *testing.T) {
	ctx := context.Background()
	record := map[string]any{"color": "green", "size": 2, "tags": []string{"a"}, "owner": nil}

	assert.True(t, MapFieldEqual("color", "green").IsSatisfiedBy(ctx, record))
	assert.False(t, MapFieldEqual("color", "blue").IsSatisfiedBy(ctx, record))
	assert.False(t, MapFieldEqual("missing", "green").IsSatisfiedBy(ctx, record))
	assert.True(t, MapFieldEqual("size", 2).IsSatisfiedBy(ctx, record))
	assert.False(t, MapFieldEqual("size", 2.0).IsSatisfiedBy(ctx, record))
	assert.False(t, MapFieldEqual("tags", "a").IsSatisfiedBy(ctx, record))
	assert.True(t, MapFieldEqual("owner", nil).IsSatisfiedBy(ctx, record))
}
