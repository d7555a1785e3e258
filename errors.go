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
	"errors"
	"fmt"
)

var (
	// ErrIntrospection is wrapped by every failure to build a constant table.
	ErrIntrospection = errors.New("enum introspection failed")
	// ErrUnknownName is returned when a name is not declared by the enum.
	ErrUnknownName = errors.New("unknown enum name")
	// ErrUnknownValue is returned when a value is not declared by the enum.
	ErrUnknownValue = errors.New("unknown enum value")
)

// IntrospectionError reports why the constants of an enum type could not be read.
type IntrospectionError struct {
	Type   string
	Reason string
}

func (e *IntrospectionError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrIntrospection, e.Type, e.Reason)
}

func (e *IntrospectionError) Unwrap() error {
	return ErrIntrospection
}

func introspectionErr(typeName, format string, args ...interface{}) error {
	return &IntrospectionError{Type: typeName, Reason: fmt.Sprintf(format, args...)}
}
