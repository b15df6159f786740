package tether

import (
	"reflect"

	"github.com/zoobzio/sentinel"
)

// describeValue reports the value type string for V and, for struct
// value types, a field schema drawn from sentinel metadata. Runs once
// per key construction; non-struct types carry no schema.
func describeValue[V any]() (string, map[string]string) {
	rt := reflect.TypeFor[V]()
	if rt.Kind() != reflect.Struct {
		return rt.String(), nil
	}

	spec, ok := sentinel.Lookup(rt.String())
	if !ok {
		spec = sentinel.Scan[V]()
	}
	if len(spec.Fields) == 0 {
		return rt.String(), nil
	}

	schema := make(map[string]string, len(spec.Fields))
	for _, field := range spec.Fields {
		schema[field.Name] = field.Type
	}
	return rt.String(), schema
}
