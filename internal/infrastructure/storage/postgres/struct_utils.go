package postgres

import (
	"reflect"
	"sync"
)

// ExtractDBColumns lists the "db" tagged columns of T, descending into
// embedded structs (entity.Audit, domain.Classification). It runs once per
// repository at construction.
func ExtractDBColumns[T any](exclude ...string) []string {
	var zero T
	meta := metadataFor(reflect.TypeOf(zero))

	skip := toSet(exclude)
	cols := make([]string, 0, len(meta.fields))
	for _, f := range meta.fields {
		if !skip[f.column] {
			cols = append(cols, f.column)
		}
	}
	return cols
}

// StructToMap converts a struct to a column map using "db" tags, descending
// into embedded structs. Excluded columns are left out.
func StructToMap(v any, exclude ...string) map[string]any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	meta := metadataFor(rv.Type())
	skip := toSet(exclude)

	res := make(map[string]any, len(meta.fields))
	for _, f := range meta.fields {
		if skip[f.column] {
			continue
		}
		res[f.column] = rv.FieldByIndex(f.index).Interface()
	}
	return res
}

type fieldInfo struct {
	index  []int
	column string
}

type typeMetadata struct {
	fields []fieldInfo
}

// typeCache holds *typeMetadata per reflect.Type.
var typeCache sync.Map

func metadataFor(t reflect.Type) *typeMetadata {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if cached, ok := typeCache.Load(t); ok {
		return cached.(*typeMetadata)
	}

	meta := &typeMetadata{}
	if t.Kind() == reflect.Struct {
		collectFields(t, nil, meta)
	}
	typeCache.Store(t, meta)
	return meta
}

func collectFields(t reflect.Type, prefix []int, meta *typeMetadata) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		index := append(append([]int{}, prefix...), i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			collectFields(field.Type, index, meta)
			continue
		}

		tag := field.Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		// Nested records (identities) are read from joined columns only.
		if field.Type.Kind() == reflect.Struct && !isScalarStruct(field.Type) {
			continue
		}
		meta.fields = append(meta.fields, fieldInfo{index: index, column: tag})
	}
}

// isScalarStruct reports struct types stored in a single column.
func isScalarStruct(t reflect.Type) bool {
	return t.PkgPath() == "time" && t.Name() == "Time"
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
