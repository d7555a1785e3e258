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
	"database/sql/driver"
	"fmt"
	"reflect"

	"github.com/tomoncle/baseenum/types"
)

// Column stores an enum in a SQL column or text encoding by its declared
// name. Reading accepts any case, following ValueByName.
type Column[E Enumerable[E]] struct {
	Enum E
}

// NewColumn wraps value.
func NewColumn[E Enumerable[E]](value E) Column[E] {
	return Column[E]{Enum: value}
}

func (c Column[E]) String() string {
	t, err := Load[E]()
	if err != nil {
		return types.IllegalName
	}
	if name, ok := t.NameByValue(c.Enum); ok {
		return name
	}
	return types.IllegalName
}

// Value implements driver.Valuer.
func (c Column[E]) Value() (driver.Value, error) {
	t, err := Load[E]()
	if err != nil {
		return nil, err
	}
	name, ok := t.NameByValue(c.Enum)
	if !ok {
		return nil, fmt.Errorf("%w: %v is not a %s", ErrUnknownValue, c.Enum, t.TypeName())
	}
	return name, nil
}

// Scan implements sql.Scanner.
func (c *Column[E]) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return c.set(v)
	case []byte:
		return c.set(string(v))
	case nil:
		return fmt.Errorf("%w: NULL is not a %s", ErrUnknownName, reflect.TypeOf((*E)(nil)).Elem())
	default:
		return fmt.Errorf("cannot scan %T into %s", src, reflect.TypeOf((*E)(nil)).Elem())
	}
}

func (c Column[E]) MarshalText() ([]byte, error) {
	name, err := c.Value()
	if err != nil {
		return nil, err
	}
	return []byte(name.(string)), nil
}

func (c *Column[E]) UnmarshalText(text []byte) error {
	return c.set(string(text))
}

func (c *Column[E]) set(name string) error {
	t, err := Load[E]()
	if err != nil {
		return err
	}
	v, ok := t.ValueByName(name)
	if !ok {
		return fmt.Errorf("%w: %q is not a %s", ErrUnknownName, name, t.TypeName())
	}
	c.Enum = v
	return nil
}
