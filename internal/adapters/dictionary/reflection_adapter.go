package dictionary

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"

	"mailstub/internal/ports"

	"github.com/go-viper/mapstructure/v2"
)

var _ ports.DictionaryAdapter = (*ReflectionAdapter)(nil)

const tagName = "mapstructure"

var (
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	stringerType      = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

// ReflectionAdapter converts structs and string keyed maps into a fresh
// map[string]interface{}. Struct fields are keyed by their name unless a
// `mapstructure` tag says otherwise and embedded structs are promoted.
// Nested structs and pointers to structs become nested maps, except value
// types such as time.Time (no exported fields, TextMarshaler or Stringer)
// which are kept as they are.
type ReflectionAdapter struct{}

func ProvideReflectionAdapter() *ReflectionAdapter {
	return &ReflectionAdapter{}
}

func (a *ReflectionAdapter) ToMap(value interface{}) (result map[string]interface{}, err error) {
	if isNil(value) {
		return map[string]interface{}{}, nil
	}

	v := reflect.Indirect(reflect.ValueOf(value))
	switch v.Kind() {
	case reflect.Struct:
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return map[string]interface{}{}, fmt.Errorf("cannot convert %T to a dictionary: keys must be strings", value)
		}
	default:
		return map[string]interface{}{}, fmt.Errorf("cannot convert %T to a dictionary", value)
	}

	// reflection panics on values it cannot read, e.g. unexported struct fields
	defer func() {
		if r := recover(); r != nil {
			result = map[string]interface{}{}
			err = fmt.Errorf("cannot convert %T to a dictionary: %v", value, r)
		}
	}()

	result, err = decode(v.Interface())
	if err == nil && v.Kind() == reflect.Struct {
		err = restoreStructFields(result, v)
	}
	if err != nil {
		return map[string]interface{}{}, fmt.Errorf("cannot convert %T to a dictionary: %w", value, err)
	}

	return result, nil
}

func decode(value interface{}) (map[string]interface{}, error) {
	result := map[string]interface{}{}
	decoder, err := mapstructure.NewDecoder(
		&mapstructure.DecoderConfig{
			Result:  &result,
			TagName: tagName,
			Squash:  true,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(value); err != nil {
		return nil, err
	}
	return result, nil
}

// restoreStructFields replaces what the decoder produced for the struct and
// pointer-to-struct fields of v, which must be a struct.
func restoreStructFields(result map[string]interface{}, v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, options, _ := strings.Cut(field.Tag.Get(tagName), ",")
		if name == "-" {
			continue
		}
		fieldValue := v.Field(i)

		squash := field.Anonymous && fieldValue.Kind() == reflect.Struct
		if strings.Contains(options, "squash") {
			squash = true
			if fieldValue.Kind() == reflect.Ptr {
				if fieldValue.IsNil() {
					continue
				}
				fieldValue = fieldValue.Elem()
			}
		}
		if squash {
			if err := restoreStructFields(result, fieldValue); err != nil {
				return err
			}
			continue
		}

		if name == "" {
			name = field.Name
		}
		if _, ok := result[name]; !ok {
			continue
		}
		restored, ok, err := restoreValue(fieldValue)
		if err != nil {
			return err
		}
		if ok {
			result[name] = restored
		}
	}
	return nil
}

// restoreValue reports false for values the decoder already handled.
func restoreValue(v reflect.Value) (interface{}, bool, error) {
	if v.Kind() == reflect.Ptr {
		if v.Type().Elem().Kind() != reflect.Struct {
			return nil, false, nil
		}
		if v.IsNil() {
			return nil, true, nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, false, nil
	}
	if isValueType(v.Type()) {
		return v.Interface(), true, nil
	}

	nested, err := decode(v.Interface())
	if err != nil {
		return nil, false, err
	}
	if err := restoreStructFields(nested, v); err != nil {
		return nil, false, err
	}
	return nested, true, nil
}

func isValueType(t reflect.Type) bool {
	for _, iface := range []reflect.Type{textMarshalerType, stringerType} {
		if t.Implements(iface) || reflect.PointerTo(t).Implements(iface) {
			return true
		}
	}
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			return false
		}
	}
	return true
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
