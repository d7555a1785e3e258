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
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/tomoncle/baseenum/types"
	"github.com/tomoncle/baseenum/utils"
)

var (
	defaultRegistry = newRegistry()
	logger          = utils.NewLogger("ENUM")
)

// Enumerable is implemented by enum types. EnumConstants is called on the
// zero value of E, once per process, and must always return the same table.
type Enumerable[E comparable] interface {
	comparable
	EnumConstants() []Constant[E]
}

type registryKey struct {
	owner reflect.Type
	value reflect.Type
}

type registry struct {
	tables map[registryKey]Descriptor
	mutex  sync.RWMutex
}

func newRegistry() *registry {
	return &registry{tables: make(map[registryKey]Descriptor)}
}

func (r *registry) get(key registryKey) (Descriptor, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	d, ok := r.tables[key]
	return d, ok
}

// load returns the cached table for key, building it on a miss. build runs
// outside the lock; when two callers race, the first insert wins and both
// observe the same table. A failed build caches nothing.
func (r *registry) load(key registryKey, build func() (Descriptor, error)) (Descriptor, error) {
	if d, ok := r.get(key); ok {
		return d, nil
	}
	d, err := build()
	if err != nil {
		return nil, err
	}
	r.mutex.Lock()
	if cached, ok := r.tables[key]; ok {
		r.mutex.Unlock()
		return cached, nil
	}
	r.tables[key] = d
	r.mutex.Unlock()
	logger.WithField("constants", len(d.Entries())).Debugf("enum table cached: %s", d.TypeName())
	return d, nil
}

func (r *registry) descriptors() []Descriptor {
	r.mutex.RLock()
	out := make([]Descriptor, 0, len(r.tables))
	for _, d := range r.tables {
		out = append(out, d)
	}
	r.mutex.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		return out[i].TypeName() < out[j].TypeName()
	})
	return out
}

// Registered returns every table cached so far, sorted by type name.
func Registered() []Descriptor {
	return defaultRegistry.descriptors()
}

// Load returns the constant table of E, building and caching it on first use.
func Load[E Enumerable[E]]() (*Table[E], error) {
	rt := reflect.TypeOf((*E)(nil)).Elem()
	d, err := defaultRegistry.load(registryKey{owner: rt, value: rt}, func() (Descriptor, error) {
		var zero E
		return NewTable(rt.String(), zero.EnumConstants()...)
	})
	if err != nil {
		return nil, err
	}
	return d.(*Table[E]), nil
}

// MustLoad is like Load but panics when the table cannot be built.
func MustLoad[E Enumerable[E]]() *Table[E] {
	t, err := Load[E]()
	if err != nil {
		panic(err)
	}
	return t
}

// Options returns every value declared by E in declaration order.
func Options[E Enumerable[E]]() []E {
	return MustLoad[E]().Options()
}

// IsValidName reports whether E declares name; see Table.IsValidName.
func IsValidName[E Enumerable[E]](name string, strict bool) bool {
	return MustLoad[E]().IsValidName(name, strict)
}

// IsValidValue reports whether value is one of E's declared values.
func IsValidValue[E Enumerable[E]](value E) bool {
	return MustLoad[E]().IsValidValue(value)
}

// ValueByName returns the value E binds to the upper-cased name.
func ValueByName[E Enumerable[E]](name string) (E, bool) {
	return MustLoad[E]().ValueByName(name)
}

// NameByValue returns the first name E binds to value.
func NameByValue[E Enumerable[E]](value E) (string, bool) {
	return MustLoad[E]().NameByValue(value)
}

// Name returns the declared name of value, or types.IllegalName.
func Name[E Enumerable[E]](value E) string {
	if name, ok := NameByValue(value); ok {
		return name
	}
	return types.IllegalName
}

// Parse resolves name like ValueByName but reports a miss as an error.
func Parse[E Enumerable[E]](name string) (E, error) {
	v, ok := ValueByName[E](name)
	if !ok {
		return v, fmt.Errorf("%w: %q is not a %s", ErrUnknownName, name, reflect.TypeOf((*E)(nil)).Elem())
	}
	return v, nil
}
