// Package database opens Bun connections to MySQL, PostgreSQL, or SQLite and
// persists enum constant tables into an enum_options reference table, so SQL
// constraints and reports can refer to the values the code declares.
package database
