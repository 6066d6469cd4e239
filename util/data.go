package util

import (
	"reflect"
)

func CopySlice[T any](src []T) []T {
	dst := make([]T, len(src))
	copy(dst, src)
	return dst
}

func Map[T1 any, T2 any](ss []T1, mapper func(T1) T2) (ret []T2) {
	for _, s := range ss {
		ret = append(ret, mapper(s))
	}
	return
}

// From https://stackoverflow.com/questions/23589564/function-for-converting-a-struct-to-map-in-golang .
// Keys are the "yaml" tags of fields.
func StructToMap(val any, ignoreNoTagFields bool, ignoreEmptyFields bool) map[string]any {
	const tagTitle = "yaml"

	data := map[string]any{}
	varType := reflect.TypeOf(val)
	if varType.Kind() != reflect.Struct {
		panic("Not a struct")
	}

	value := reflect.ValueOf(val)
	for i := 0; i < varType.NumField(); i++ {
		if !value.Field(i).CanInterface() {
			continue
		}
		tag, ok := varType.Field(i).Tag.Lookup(tagTitle)
		var fieldName string
		if ok && len(tag) > 0 {
			fieldName = tag
		} else if ignoreNoTagFields {
			continue
		} else {
			fieldName = varType.Field(i).Name
		}
		fieldKind := varType.Field(i).Type.Kind()
		fieldValue := value.Field(i)
		if fieldKind == reflect.Struct {
			data[fieldName] = StructToMap(fieldValue.Interface(), ignoreNoTagFields, ignoreEmptyFields)
			continue
		}
		if ignoreEmptyFields && isEmpty(fieldValue) {
			continue
		}
		if fieldKind == reflect.Pointer && !fieldValue.IsNil() {
			data[fieldName] = fieldValue.Elem().Interface()
		} else {
			data[fieldName] = fieldValue.Interface()
		}
	}
	return data
}

func isEmpty(value reflect.Value) bool {
	switch value.Kind() {
	case reflect.String:
		return value.String() == ""
	case reflect.Int, reflect.Int64:
		return value.Int() == 0
	case reflect.Float64:
		return value.Float() == 0
	case reflect.Bool:
		return !value.Bool()
	case reflect.Slice, reflect.Pointer:
		return value.IsNil()
	}
	return false
}
