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
)

// Constant binds a declared name to its value.
type Constant[V comparable] struct {
	Name  string
	Value V
}

// Const is shorthand for Constant[V]{Name: name, Value: value}.
func Const[V comparable](name string, value V) Constant[V] {
	return Constant[V]{Name: name, Value: value}
}

// Entry is an untyped view of a Constant.
type Entry struct {
	Name  string
	Value interface{}
}

// Descriptor is the type-erased view of a table, used by the registry
// snapshot and by the database layer.
type Descriptor interface {
	TypeName() string
	Entries() []Entry
}

// Table is the immutable name to value mapping of one enum type. Constants
// keep their declaration order. A Table is safe for concurrent use.
type Table[V comparable] struct {
	typeName  string
	constants []Constant[V]
	byName    map[string]int
	byFold    map[string]struct{}
	byValue   map[V]int
	// set when V can hold dynamic values that are not comparable at runtime
	checkKeys bool
}

var _ Descriptor = (*Table[int])(nil)

// NewTable builds a table from constants in declaration order. Names must be
// non-empty and unique; values must be comparable. Several names may share a
// value, in which case NameByValue reports the first one declared.
func NewTable[V comparable](typeName string, constants ...Constant[V]) (*Table[V], error) {
	t := &Table[V]{
		typeName:  typeName,
		constants: make([]Constant[V], 0, len(constants)),
		byName:    make(map[string]int, len(constants)),
		byFold:    make(map[string]struct{}, len(constants)),
		byValue:   make(map[V]int, len(constants)),
		checkKeys: mayPanicAsKey(reflect.TypeOf((*V)(nil)).Elem()),
	}
	for _, c := range constants {
		if c.Name == "" {
			return nil, introspectionErr(typeName, "constant #%d has an empty name", len(t.constants))
		}
		if _, dup := t.byName[c.Name]; dup {
			return nil, introspectionErr(typeName, "constant %q declared twice", c.Name)
		}
		if t.checkKeys && !isComparable(c.Value) {
			return nil, introspectionErr(typeName, "constant %q has non-comparable value of type %T", c.Name, c.Value)
		}
		idx := len(t.constants)
		t.constants = append(t.constants, c)
		t.byName[c.Name] = idx
		t.byFold[asciiLower(c.Name)] = struct{}{}
		if _, seen := t.byValue[c.Value]; !seen {
			t.byValue[c.Value] = idx
		}
	}
	return t, nil
}

// TypeName returns the name of the enum type the table was built for.
func (t *Table[V]) TypeName() string { return t.typeName }

// Len returns the number of declared constants.
func (t *Table[V]) Len() int { return len(t.constants) }

// Constants returns a copy of the declared constants.
func (t *Table[V]) Constants() []Constant[V] {
	out := make([]Constant[V], len(t.constants))
	copy(out, t.constants)
	return out
}

// Names returns the declared names in declaration order.
func (t *Table[V]) Names() []string {
	out := make([]string, len(t.constants))
	for i, c := range t.constants {
		out[i] = c.Name
	}
	return out
}

// Options returns the declared values in declaration order. An enum without
// constants yields an empty, non-nil slice.
func (t *Table[V]) Options() []V {
	out := make([]V, len(t.constants))
	for i, c := range t.constants {
		out[i] = c.Value
	}
	return out
}

// IsValidName reports whether name is declared. With strict the match is
// exact; otherwise it ignores ASCII case.
func (t *Table[V]) IsValidName(name string, strict bool) bool {
	if strict {
		_, ok := t.byName[name]
		return ok
	}
	_, ok := t.byFold[asciiLower(name)]
	return ok
}

// IsValidValue reports whether value equals a declared value. Equality is
// strict: when V is an interface type the dynamic types must match too.
func (t *Table[V]) IsValidValue(value V) bool {
	_, ok := t.indexOfValue(value)
	return ok
}

// ValueByName upper-cases the ASCII letters of name and returns the value bound to it. The
// boolean is false when no such constant exists, in which case the returned
// value is the zero value of V and must not be used.
func (t *Table[V]) ValueByName(name string) (V, bool) {
	idx, ok := t.byName[asciiUpper(name)]
	if !ok {
		var zero V
		return zero, false
	}
	return t.constants[idx].Value, true
}

// NameByValue returns the first declared name bound to value.
func (t *Table[V]) NameByValue(value V) (string, bool) {
	idx, ok := t.indexOfValue(value)
	if !ok {
		return "", false
	}
	return t.constants[idx].Name, true
}

// NamesByValue returns every name bound to value, in declaration order.
func (t *Table[V]) NamesByValue(value V) []string {
	if _, ok := t.indexOfValue(value); !ok {
		return nil
	}
	var names []string
	for _, c := range t.constants {
		if c.Value == value {
			names = append(names, c.Name)
		}
	}
	return names
}

// Entries implements Descriptor.
func (t *Table[V]) Entries() []Entry {
	out := make([]Entry, len(t.constants))
	for i, c := range t.constants {
		out[i] = Entry{Name: c.Name, Value: c.Value}
	}
	return out
}

func (t *Table[V]) indexOfValue(value V) (int, bool) {
	if t.checkKeys && !isComparable(value) {
		return 0, false
	}
	idx, ok := t.byValue[value]
	return idx, ok
}

// asciiLower maps A-Z to a-z only. Unicode folding would let names such as
// "\u212Aey" (Kelvin sign) match "KEY".
func asciiLower(s string) string {
	return asciiMap(s, 'A', 'Z', 'a'-'A')
}

// asciiUpper maps a-z to A-Z only.
func asciiUpper(s string) string {
	return asciiMap(s, 'a', 'z', 'A'-'a')
}

func asciiMap(s string, lo, hi byte, delta int) string {
	i := 0
	for ; i < len(s); i++ {
		if s[i] >= lo && s[i] <= hi {
			break
		}
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if b[i] >= lo && b[i] <= hi {
			b[i] = byte(int(b[i]) + delta)
		}
	}
	return string(b)
}

// mayPanicAsKey reports whether values of type rt can hold something that
// panics when used as a map key.
func mayPanicAsKey(rt reflect.Type) bool {
	switch rt.Kind() {
	case reflect.Interface:
		return true
	case reflect.Array:
		return mayPanicAsKey(rt.Elem())
	case reflect.Struct:
		for i := 0; i < rt.NumField(); i++ {
			if mayPanicAsKey(rt.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

func isComparable(v interface{}) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).Comparable()
}
