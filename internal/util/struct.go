package util

import (
	"fmt"
	"reflect"
	"strings"
)

// IsStructInitialized returns an error naming the first exported field of
// the struct s points to that still holds its zero value. Fields tagged
// `wire:"-"` are skipped.
func IsStructInitialized(s any) error {
	v := reflect.ValueOf(s)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return fmt.Errorf("struct is nil")
		}
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return fmt.Errorf("expected a struct, got %s", v.Kind())
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || strings.TrimSpace(field.Tag.Get("wire")) == "-" {
			continue
		}

		if v.Field(i).IsZero() {
			return fmt.Errorf("field %s is not initialized", field.Name)
		}
	}

	return nil
}
