// Package args encodes GMT module arguments.
//
// GMT modules take their options as a single command-line style string
// ("-R0/10/0/10 -JX10c -Baf"). The higher-level API describes options as
// struct fields tagged with the GMT flag they stand for:
//
//	type CoastParams struct {
//	    Region     Region `gmt:"R"`
//	    Projection string `gmt:"J"`
//	    Land       string `gmt:"G"`
//	}
//
// Marshal turns such a struct into the flag string. The tag holds the flag
// key, usually a single letter, sometimes letter plus modifier ("Qg").
package args

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

type flagArg struct {
	key  string
	text string
}

// Marshal renders the gmt-tagged fields of a params struct as a single
// argument string. Zero-valued fields are omitted; a true bool renders as a
// bare flag ("-P"); slices join their elements with "/". Flags are emitted
// sorted by key so the result is deterministic for a given params value.
//
// Fields without a gmt tag, or tagged "-", are ignored. A field of an
// unsupported type is an error, reported with the field name.
func Marshal(v any) (string, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", fmt.Errorf("args: nil params")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return "", fmt.Errorf("args: params must be a struct, got %T", v)
	}

	rt := rv.Type()
	flags := make([]flagArg, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		key := field.Tag.Get("gmt")
		if key == "" || key == "-" {
			continue
		}
		text, present, err := formatValue(rv.Field(i))
		if err != nil {
			return "", fmt.Errorf("args: field %s: %w", field.Name, err)
		}
		if !present {
			continue
		}
		flags = append(flags, flagArg{key: key, text: text})
	}

	sort.Slice(flags, func(i, j int) bool { return flags[i].key < flags[j].key })

	parts := make([]string, len(flags))
	for i, f := range flags {
		parts[i] = "-" + f.key + f.text
	}
	return strings.Join(parts, " "), nil
}

// formatValue renders one field. present reports whether the flag should be
// emitted at all: zero values stand for "option not given".
func formatValue(rv reflect.Value) (text string, present bool, err error) {
	if rv.Type().Implements(stringerType) {
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "", false, nil
		}
		s := rv.Interface().(fmt.Stringer).String()
		return s, s != "", nil
	}

	switch rv.Kind() {
	case reflect.Bool:
		return "", rv.Bool(), nil
	case reflect.String:
		s := rv.String()
		return s, s != "", nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		return strconv.FormatInt(n, 10), n != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := rv.Uint()
		return strconv.FormatUint(n, 10), n != 0, nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return strconv.FormatFloat(f, 'g', -1, 64), f != 0, nil
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return "", false, nil
		}
		elems := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			s, _, err := formatValue(rv.Index(i))
			if err != nil {
				return "", false, err
			}
			elems[i] = s
		}
		return strings.Join(elems, "/"), true, nil
	default:
		return "", false, fmt.Errorf("unsupported type %s", rv.Type())
	}
}
