// Package config loads configuration structs from environment variables.
//
// Variable names follow the pattern:
//
//	{Prefix}_{STAGE}_{FIELD}
//
// Named nested structs add their field name as a path segment:
//
//	{Prefix}_{STAGE}_{STRUCT}_{FIELD}
//
// Embedded structs are flattened and add no segment. Go field names are
// converted from CamelCase to UPPER_SNAKE_CASE:
//
//	UnknownControl → UNKNOWN_CONTROL
//	HTTPAddr       → HTTP_ADDR
//
// Supported field types: string, bool, int*, uint*, float*, time.Duration,
// and any type whose pointer implements encoding.TextUnmarshaler. Named
// string types such as pipes.QueueMode load like plain strings. Fields of
// other types (functions, interfaces, maps, channels, pointers) are skipped.
//
// Example with pipes.QueueConfig and stage "queue":
//
//	PIPES_QUEUE_MODE=sort
//	PIPES_QUEUE_UNKNOWN_CONTROL=forward
//
// Example with pipes.FilterConfig and stage "scale":
//
//	PIPES_SCALE_MODE=bypass
package config

import (
	"encoding"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// DefaultPrefix is the variable prefix used when Loader.Prefix is empty.
const DefaultPrefix = "PIPES"

// ErrInvalidTarget is returned when Load is not given a pointer to a struct.
var ErrInvalidTarget = errors.New("config: dst must be a pointer to a struct")

var (
	durationType        = reflect.TypeOf(time.Duration(0))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// Loader reads environment variables into configuration structs.
type Loader struct {
	// Prefix for environment variable names.
	// Default: "PIPES".
	Prefix string

	// lookup overrides os.LookupEnv for testing.
	lookup func(string) (string, bool)
}

func (l Loader) prefix(stage string) string {
	p := l.Prefix
	if p == "" {
		p = DefaultPrefix
	}
	return p + "_" + normalizeStage(stage)
}

func (l Loader) lookupEnv(key string) (string, bool) {
	if l.lookup != nil {
		return l.lookup(key)
	}
	return os.LookupEnv(key)
}

// Load populates the struct pointed to by dst from environment variables.
// The stage names the fitting or component being configured and becomes
// the second segment of each variable name.
//
// Only fields with a set variable are modified, so Load overlays
// environment overrides on programmatic defaults.
func (l Loader) Load(stage string, dst any) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w, got %T", ErrInvalidTarget, dst)
	}
	root := v.Elem()

	var err error
	walk(l.prefix(stage), root.Type(), nil, func(f field) bool {
		raw, ok := l.lookupEnv(f.key)
		if !ok {
			return true
		}
		err = f.set(root.FieldByIndex(f.index), raw)
		return err == nil
	})
	return err
}

// Keys returns the variable names Load would check for the given struct.
// The dst parameter may be a struct value or a pointer to a struct.
func (l Loader) Keys(stage string, dst any) []string {
	t := reflect.TypeOf(dst)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	var keys []string
	walk(l.prefix(stage), t, nil, func(f field) bool {
		keys = append(keys, f.key)
		return true
	})
	return keys
}

// Load populates dst using a Loader with the default prefix.
func Load(stage string, dst any) error {
	return Loader{}.Load(stage, dst)
}

// Keys returns variable names using a Loader with the default prefix.
func Keys(stage string, dst any) []string {
	return Loader{}.Keys(stage, dst)
}

// field is a loadable leaf of a config struct.
type field struct {
	key   string
	index []int
	typ   reflect.Type
}

// walk visits every loadable field of t in declaration order.
// It stops when visit returns false and reports whether it ran to the end.
func walk(prefix string, t reflect.Type, index []int, visit func(field) bool) bool {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		idx := append(append([]int(nil), index...), i)

		// Unexported embedded structs still promote their exported fields.
		if !sf.IsExported() && !(sf.Anonymous && sf.Type.Kind() == reflect.Struct) {
			continue
		}

		key := prefix
		if !sf.Anonymous {
			key = prefix + "_" + toUpperSnake(sf.Name)
		}

		switch {
		case loadable(sf.Type):
			if !sf.IsExported() {
				continue
			}
			if !visit(field{key: key, index: idx, typ: sf.Type}) {
				return false
			}
		case sf.Type.Kind() == reflect.Struct:
			if !walk(key, sf.Type, idx, visit) {
				return false
			}
		}
	}
	return true
}

func loadable(t reflect.Type) bool {
	if t == durationType || reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return true
	}
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func (f field) set(v reflect.Value, raw string) error {
	if err := parseInto(v, raw); err != nil {
		return fmt.Errorf("config: %s: %w", f.key, err)
	}
	return nil
}

func parseInto(v reflect.Value, raw string) error {
	if v.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}
	if u, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return u.UnmarshalText([]byte(raw))
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(raw, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		v.SetBool(b)
	}
	return nil
}

// normalizeStage converts a stage name to a variable segment: letters are
// uppercased, hyphens, spaces and underscores become underscores, and
// other characters are dropped.
func normalizeStage(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(unicode.ToUpper(r))
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == ' ' || r == '_':
			b.WriteRune('_')
		}
	}
	return b.String()
}

// toUpperSnake converts a CamelCase field name to UPPER_SNAKE_CASE.
func toUpperSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
