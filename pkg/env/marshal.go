package env

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var ErrNotStruct = errors.New("env: value must be a struct or a pointer to struct")

// MarshalEnv renders the env-tagged fields of c as .env lines, in field order.
// Empty strings and empty slices are omitted; numbers and bools are always written.
func MarshalEnv(c any) (string, error) {
	v := reflect.ValueOf(c)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return "", ErrNotStruct
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return "", ErrNotStruct
	}
	t := v.Type()

	var lines []string
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		// "KEY,required,notEmpty" -> "KEY"
		key, _, _ := strings.Cut(field.Tag.Get("env"), ",")
		if key == "" {
			continue
		}

		sep := field.Tag.Get("envSeparator")
		if sep == "" {
			sep = ","
		}

		val, ok := formatValue(v.Field(i), sep)
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s=%s", key, val))
	}

	if len(lines) == 0 {
		return "", nil
	}
	return strings.Join(lines, "\n") + "\n", nil
}

// formatValue returns false for values that should not be written.
func formatValue(v reflect.Value, sep string) (string, bool) {
	switch v.Kind() {
	case reflect.String:
		return v.String(), v.String() != ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), true
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true
	case reflect.Slice:
		if v.Len() == 0 {
			return "", false
		}
		items := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			s, ok := formatValue(v.Index(i), sep)
			if !ok {
				continue
			}
			items = append(items, s)
		}
		return strings.Join(items, sep), len(items) > 0
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return "", false
		}
		return formatValue(v.Elem(), sep)
	default:
		return fmt.Sprintf("%v", v.Interface()), true
	}
}
