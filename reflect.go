/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package baseenum

import (
	"reflect"
	"strings"
	"unicode"
)

// Reflect reads the exported fields of def, a struct or pointer to struct,
// as the constants of an enum whose values have type V. Field order is the
// declaration order. A field is named by its `enum:"NAME"` tag, or else by
// its Go name in UPPER_SNAKE_CASE; `enum:"-"` skips it.
//
// The table is cached per struct type and the cached table is returned on
// later calls. def is still read on every call: an instance whose constants
// differ from the cached table is rejected with an IntrospectionError.
func Reflect[V comparable](def interface{}) (*Table[V], error) {
	rv := reflect.ValueOf(def)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, introspectionErr(rv.Type().String(), "nil pointer")
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, introspectionErr("<nil>", "no definition given")
	}
	if rv.Kind() != reflect.Struct {
		return nil, introspectionErr(rv.Type().String(), "expected a struct, got %s", rv.Kind())
	}
	fresh, err := reflectTable[V](rv)
	if err != nil {
		return nil, err
	}
	key := registryKey{owner: rv.Type(), value: reflect.TypeOf((*V)(nil)).Elem()}
	d, err := defaultRegistry.load(key, func() (Descriptor, error) {
		return fresh, nil
	})
	if err != nil {
		return nil, err
	}
	cached := d.(*Table[V])
	if cached != fresh && !sameConstants(cached, fresh) {
		return nil, introspectionErr(fresh.TypeName(), "constants differ from the instance cached first")
	}
	return cached, nil
}

// sameConstants compares names and values in order. Both tables passed the
// comparability check in NewTable, so == cannot panic.
func sameConstants[V comparable](a, b *Table[V]) bool {
	if len(a.constants) != len(b.constants) {
		return false
	}
	for i := range a.constants {
		if a.constants[i] != b.constants[i] {
			return false
		}
	}
	return true
}

func reflectTable[V comparable](rv reflect.Value) (*Table[V], error) {
	rt := rv.Type()
	typeName := rt.String()
	constants := make([]Constant[V], 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Tag.Get("enum")
		if name == "-" {
			continue
		}
		if name == "" {
			name = upperSnake(field.Name)
		}
		raw := rv.Field(i).Interface()
		value, ok := raw.(V)
		if !ok && raw == nil && reflect.TypeOf((*V)(nil)).Elem().Kind() == reflect.Interface {
			ok = true
		}
		if !ok {
			return nil, introspectionErr(typeName, "field %s has type %s, want %s", field.Name, field.Type, reflect.TypeOf((*V)(nil)).Elem())
		}
		constants = append(constants, Const(name, value))
	}
	return NewTable(typeName, constants...)
}

// upperSnake turns "DataTableType" into "DATA_TABLE_TYPE" and "HTTPCode"
// into "HTTP_CODE".
func upperSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
