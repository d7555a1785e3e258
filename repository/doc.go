// Package repository provides a small generic repository built on Bun for
// filtered listing, counting, and transactional insert and delete.
package repository
