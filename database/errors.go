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

package database

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
)

var (
	// ErrDuplicateOption is returned when a sync races another writer on the
	// same (enum_type, name) pair.
	ErrDuplicateOption = errors.New("duplicate enum option")
	// ErrNoOptionTable is returned when enum_options has not been created.
	ErrNoOptionTable = errors.New("enum option table does not exist")
)

// IsDuplicateKey reports whether err is a unique-key violation on any of the
// supported drivers.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "unique constraint failed") ||
		strings.Contains(s, "duplicate key value") ||
		strings.Contains(s, "sqlstate 23505")
}

// IsMissingTable reports whether err says the queried table does not exist.
func IsMissingTable(err error) bool {
	if err == nil {
		return false
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1146
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "42P01"
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "no such table") ||
		strings.Contains(s, "undefined table") ||
		strings.Contains(s, "sqlstate 42p01")
}
