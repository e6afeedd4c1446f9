// Package configutil turns loosely typed rule options from config files
// into typed rule configuration.
package configutil

import (
	"reflect"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

// Resolve merges user options over defaults and unmarshals to typed config.
// If opts is nil or empty, or cannot be decoded, defaults are returned.
//
// Zero-valued fields in the decoded result fall back to defaults, so an
// explicit 0 or false cannot override a non-zero default. Use pointer
// fields when that matters.
func Resolve[T any](opts map[string]any, defaults T) T {
	if len(opts) == 0 {
		return defaults
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(opts, "."), nil); err != nil {
		return defaults
	}

	var result T
	if err := k.Unmarshal("", &result); err != nil {
		return defaults
	}

	return mergeDefaults(result, defaults)
}

// Coerce converts a dynamic rule config value to a typed config with defaults.
// Supported inputs:
//   - T
//   - *T
//   - map[string]any (decoded via Resolve)
//
// Any unsupported value falls back to defaults.
func Coerce[T any](config any, defaults T) T {
	switch v := config.(type) {
	case *T:
		if v != nil {
			return *v
		}
	case map[string]any:
		return Resolve(v, defaults)
	case T:
		return v
	}
	return defaults
}

// mergeDefaults fills zero-valued fields in result with values from defaults.
func mergeDefaults[T any](result, defaults T) T {
	resultVal := reflect.ValueOf(&result).Elem()
	defaultsVal := reflect.ValueOf(defaults)

	if resultVal.Kind() != reflect.Struct {
		return result
	}

	for i := range resultVal.NumField() {
		field := resultVal.Field(i)
		if !field.CanSet() {
			continue
		}
		if field.IsZero() {
			field.Set(defaultsVal.Field(i))
		}
	}

	return result
}
