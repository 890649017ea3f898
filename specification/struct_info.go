package specification

import (
	"reflect"
	"strings"
	"sync"

	"golang.org/x/exp/slices"
)

type _StructInfo struct {
	Type reflect.Type
	// 按深度排列的全部可访问字段，浅层字段在前
	Fields []*_FieldInfo
}

func (s *_StructInfo) Analysis(opts *options) *_StructInfo {
	return s.analysis(opts, map[reflect.Type]struct{}{})
}

func (s *_StructInfo) analysis(opts *options, visiting map[reflect.Type]struct{}) *_StructInfo {
	visiting[s.Type] = struct{}{}
	defer delete(visiting, s.Type)
	var embedded []*_FieldInfo
	for i := 0; i < s.Type.NumField(); i++ {
		field := &_FieldInfo{StructField: s.Type.Field(i)}
		if field.Analysis(opts).Ignored {
			continue
		}
		if field.Anonymous && field.NestedType() != nil {
			embedded = append(embedded, field)
		}
		// 未导出的匿名结构体只提升其字段
		if !field.IsExported() {
			continue
		}
		s.Fields = append(s.Fields, field)
	}
	for _, field := range embedded {
		nestedType := field.NestedType()
		// 递归嵌入，停止展开
		if _, ok := visiting[nestedType]; ok {
			continue
		}
		nested := (&_StructInfo{Type: nestedType}).analysis(opts, visiting)
		for _, nestedField := range nested.Fields {
			s.Fields = append(s.Fields, nestedField.Clone().Unshift(field))
		}
	}
	slices.SortStableFunc(s.Fields, func(a, b *_FieldInfo) bool {
		return len(a.Indexes) < len(b.Indexes)
	})
	return s
}

// FindField returns the shallowest field whose label or name matches name. Like a Go selector,
// several matches at that depth are ambiguous and yield nil, unless exactly one label is
// identical to name.
func (s *_StructInfo) FindField(name string, opts *options) *_FieldInfo {
	var found []*_FieldInfo
	for _, f := range s.Fields {
		// 已找到更浅的字段
		if len(found) > 0 && len(f.Indexes) > len(found[0].Indexes) {
			break
		}
		if f.Label == name || opts.NameComparer(f.Label, name) || opts.NameComparer(f.Name, name) {
			found = append(found, f)
		}
	}
	if len(found) == 1 {
		return found[0]
	}
	var exact *_FieldInfo
	for _, f := range found {
		if f.Label != name {
			continue
		}
		if exact != nil {
			return nil
		}
		exact = f
	}
	return exact
}

// FindGettableValue walks field.Indexes from structVal. It reports false when a pointer
// on the path is nil.
func (s *_StructInfo) FindGettableValue(structVal reflect.Value, field *_FieldInfo) (reflect.Value, bool) {
	fieldVal := structVal
	last := len(field.Indexes) - 1
	for n, i := range field.Indexes {
		fieldVal = fieldVal.Field(i)
		if n == last {
			break
		}
		if fieldVal.Kind() == reflect.Pointer {
			if fieldVal.IsNil() {
				return fieldVal, false
			}
			fieldVal = fieldVal.Elem()
		}
	}
	return fieldVal, true
}

type _FieldInfo struct {
	reflect.StructField
	Indexes []int
	Tagged  bool
	Ignored bool
	Label   string
}

func (f *_FieldInfo) Analysis(opts *options) *_FieldInfo {
	tagValue := f.Tag.Get(opts.TagKey)
	// 如果是tag是"-",则忽略该字段
	if tagValue == "-" {
		f.Ignored = true
		return f
	}
	f.Ignored = false
	f.Indexes = slices.Clone(f.StructField.Index)
	label, _, _ := strings.Cut(tagValue, ",")
	// 没找到tag，或者value为空，默认的字段名
	if len(label) <= 0 {
		f.Tagged = false
		f.Label = f.Name
		return f
	}
	f.Tagged = true
	f.Label = label
	return f
}

// NestedType returns the struct type whose fields an anonymous field promotes, or nil.
func (f *_FieldInfo) NestedType() reflect.Type {
	if f.Tagged {
		return nil
	}
	switch {
	case f.Type.Kind() == reflect.Struct:
		return f.Type
	case f.Type.Kind() == reflect.Pointer && f.Type.Elem().Kind() == reflect.Struct:
		return f.Type.Elem()
	default:
		return nil
	}
}

func (f *_FieldInfo) Clone() *_FieldInfo {
	clone := *f
	clone.Indexes = slices.Clone(f.Indexes)
	return &clone
}

// Unshift prefixes the path of the embedding field.
func (f *_FieldInfo) Unshift(parent *_FieldInfo) *_FieldInfo {
	f.Indexes = slices.Insert(f.Indexes, 0, parent.Indexes...)
	return f
}

type _StructInfoKey struct {
	Type   reflect.Type
	TagKey string
}

var _StructInfoCache sync.Map

func _CachedStructInfo(typ reflect.Type, opts *options) *_StructInfo {
	key := _StructInfoKey{Type: typ, TagKey: opts.TagKey}
	if value, ok := _StructInfoCache.Load(key); ok {
		return value.(*_StructInfo)
	}
	info := (&_StructInfo{Type: typ}).Analysis(opts)
	value, _ := _StructInfoCache.LoadOrStore(key, info)
	return value.(*_StructInfo)
}
