package tableview

import (
	"fmt"
	"reflect"
)

// StructColumns returns a Column for every exported field
// of the struct type T including the fields of embedded structs.
// Column names are defined by naming, nil naming uses the field names.
// Fields named as naming.Ignore are skipped.
//
// Field values are formatted with fmt.Sprint after dereferencing
// pointers, nil values and fields of nil embedded struct pointers
// are formatted as empty string.
// The sort key of a column equals its display value.
//
// StructColumns panics if T is not a struct type.
func StructColumns[T any](naming *StructFieldNaming) []Column[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic(fmt.Errorf("StructColumns needs a struct type, got %s", structType))
	}
	var columns []Column[T]
	for _, field := range StructFieldTypes(structType) {
		name := naming.StructFieldColumn(field)
		if naming.IsIgnored(name) {
			continue
		}
		accessor := structFieldAccessor[T](field.Index)
		columns = append(columns, NewColumn(name, accessor, accessor))
	}
	return columns
}

func structFieldAccessor[T any](index []int) Accessor[T] {
	return func(row *T) string {
		val, err := reflect.ValueOf(row).Elem().FieldByIndexErr(index)
		if err != nil {
			// Nil embedded struct pointer
			return ""
		}
		for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
			if val.IsNil() {
				return ""
			}
			val = val.Elem()
		}
		if ValueIsNil(val) {
			return ""
		}
		return fmt.Sprint(val.Interface())
	}
}
