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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type httpStatus struct {
	OK         int
	NotFound   int `enum:"NOT_FOUND_404"`
	Internal   int `enum:"-"`
	hidden     int
	TeapotCode int
}

type mixedConstants struct {
	One  int
	Two  string
	None interface{}
}

type notAllInts struct {
	A int
	B string
}

type withSlice struct {
	A []int
}

func TestReflectStruct(t *testing.T) {
	table, err := Reflect[int](httpStatus{OK: 200, NotFound: 404, Internal: 500, hidden: 1, TeapotCode: 418})
	require.NoError(t, err)

	assert.Equal(t, "baseenum.httpStatus", table.TypeName())
	assert.Equal(t, []string{"OK", "NOT_FOUND_404", "TEAPOT_CODE"}, table.Names())
	assert.Equal(t, []int{200, 404, 418}, table.Options())

	v, ok := table.ValueByName("teapot_code")
	require.True(t, ok)
	assert.Equal(t, 418, v)
	assert.False(t, table.IsValidValue(500))
	assert.False(t, table.IsValidName("INTERNAL", false))
}

func TestReflectCachesPerType(t *testing.T) {
	first, err := Reflect[int](httpStatus{OK: 200, NotFound: 404, TeapotCode: 418})
	require.NoError(t, err)
	second, err := Reflect[int](&httpStatus{OK: 200, NotFound: 404, Internal: 501, TeapotCode: 418})
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, []int{200, 404, 418}, second.Options())
}

func TestReflectRejectsConflictingInstance(t *testing.T) {
	type tier struct {
		Free int
		Pro  int
	}
	first, err := Reflect[int](tier{Free: 1, Pro: 2})
	require.NoError(t, err)

	conflicting, err := Reflect[int](tier{Free: 1, Pro: 3})
	assert.Nil(t, conflicting)
	assert.ErrorIs(t, err, ErrIntrospection)
	var ie *IntrospectionError
	require.ErrorAs(t, err, &ie)
	assert.Contains(t, ie.Reason, "differ")

	again, err := Reflect[int](&tier{Free: 1, Pro: 2})
	require.NoError(t, err)
	assert.Same(t, first, again)
}

func TestReflectAnyKeepsDynamicTypes(t *testing.T) {
	table, err := Reflect[any](mixedConstants{One: 1, Two: "2"})
	require.NoError(t, err)

	assert.Equal(t, []any{1, "2", nil}, table.Options())
	assert.True(t, table.IsValidValue(1))
	assert.False(t, table.IsValidValue("1"))
	assert.True(t, table.IsValidValue(nil))
}

func TestReflectFailures(t *testing.T) {
	tests := []struct {
		name string
		def  interface{}
	}{
		{"nil", nil},
		{"nil pointer", (*httpStatus)(nil)},
		{"not a struct", 42},
		{"field type mismatch", notAllInts{A: 1, B: "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Reflect[int](tt.def)
			assert.Nil(t, table)
			assert.ErrorIs(t, err, ErrIntrospection)
		})
	}

	_, err := Reflect[any](withSlice{A: []int{1}})
	assert.ErrorIs(t, err, ErrIntrospection)

	_, cached := defaultRegistry.get(registryKey{owner: reflect.TypeOf(notAllInts{}), value: reflect.TypeOf(0)})
	assert.False(t, cached)
}

func TestUpperSnake(t *testing.T) {
	tests := map[string]string{
		"OK":            "OK",
		"Red":           "RED",
		"DataTableType": "DATA_TABLE_TYPE",
		"HTTPCode":      "HTTP_CODE",
		"Level2Cache":   "LEVEL2_CACHE",
		"UserID":        "USER_ID",
		"ID":            "ID",
	}
	for in, want := range tests {
		assert.Equal(t, want, upperSnake(in), in)
	}
}
