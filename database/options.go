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
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/tomoncle/baseenum"
	"github.com/tomoncle/baseenum/repository"
	"github.com/tomoncle/baseenum/types"
	"github.com/tomoncle/baseenum/utils"

	"github.com/uptrace/bun"
)

// EnumOption is one persisted constant of an enum type.
type EnumOption struct {
	bun.BaseModel `bun:"table:enum_options,alias:eo"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	EnumType  string    `bun:"enum_type,notnull,unique:enum_type_name" json:"enum_type"`
	Name      string    `bun:"name,notnull,unique:enum_type_name" json:"name"`
	Value     string    `bun:"value,notnull" json:"value"`
	ValueKind string    `bun:"value_kind,notnull" json:"value_kind"`
	Position  int       `bun:"position,notnull" json:"position"`
	SyncedAt  time.Time `bun:"synced_at,notnull" json:"synced_at"`
}

// Drift lists how the persisted options of one enum differ from its table.
type Drift struct {
	EnumType string
	// Missing names are declared but not persisted.
	Missing []string
	// Stale names are persisted but no longer declared.
	Stale []string
	// Changed names have a different value, value kind, or position.
	Changed []string
}

// Empty reports whether the database matches the table.
func (d *Drift) Empty() bool {
	return len(d.Missing) == 0 && len(d.Stale) == 0 && len(d.Changed) == 0
}

// OptionStore mirrors enum tables into enum_options.
type OptionStore struct {
	repo   repository.Repository[EnumOption]
	logger Logger
}

// NewOptionStore returns a store using db and the package logger.
func NewOptionStore(db *bun.DB) *OptionStore {
	return &OptionStore{
		repo:   repository.NewRepository[EnumOption](db),
		logger: GetLogger(),
	}
}

func (s *OptionStore) SetLogger(logger Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// CreateTable creates enum_options if it does not exist.
func (s *OptionStore) CreateTable(ctx context.Context) error {
	_, err := s.repo.DB().NewCreateTable().
		Model((*EnumOption)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create enum option table: %w", err)
	}
	return nil
}

// Sync replaces the persisted options of the table's enum type with its
// current constants, in one transaction.
func (s *OptionStore) Sync(ctx context.Context, table baseenum.Descriptor) error {
	start := time.Now()
	rows := optionsOf(table)
	err := s.repo.DB().RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := s.repo.DeleteWithTx(ctx, tx, byType(table.TypeName())); err != nil {
			return err
		}
		return s.repo.CreateWithTx(ctx, tx, rows...)
	})
	if err != nil {
		return s.wrap(table.TypeName(), err)
	}
	s.logger.Info("Enum options synced", "type", table.TypeName(), "options", len(rows), "took", utils.Since(start))
	return nil
}

// SyncAll syncs each table in order and stops at the first failure.
func (s *OptionStore) SyncAll(ctx context.Context, tables ...baseenum.Descriptor) error {
	for _, table := range tables {
		if err := s.Sync(ctx, table); err != nil {
			return err
		}
	}
	return nil
}

// List returns the persisted options of enumType ordered by position.
func (s *OptionStore) List(ctx context.Context, enumType string) ([]*EnumOption, error) {
	options, err := s.repo.List(ctx, byType(enumType), "position ASC")
	if err != nil {
		return nil, s.wrap(enumType, err)
	}
	return options, nil
}

// Count returns how many options are persisted for enumType.
func (s *OptionStore) Count(ctx context.Context, enumType string) (int, error) {
	n, err := s.repo.Count(ctx, byType(enumType))
	if err != nil {
		return 0, s.wrap(enumType, err)
	}
	return n, nil
}

// Diff compares the persisted options of the table's enum type with the table.
func (s *OptionStore) Diff(ctx context.Context, table baseenum.Descriptor) (*Drift, error) {
	persisted, err := s.List(ctx, table.TypeName())
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*EnumOption, len(persisted))
	for _, o := range persisted {
		byName[o.Name] = o
	}
	drift := &Drift{EnumType: table.TypeName()}
	for _, want := range optionsOf(table) {
		got, ok := byName[want.Name]
		if !ok {
			drift.Missing = append(drift.Missing, want.Name)
			continue
		}
		delete(byName, want.Name)
		if got.Value != want.Value || got.ValueKind != want.ValueKind || got.Position != want.Position {
			drift.Changed = append(drift.Changed, want.Name)
		}
	}
	for _, o := range persisted {
		if _, stale := byName[o.Name]; stale {
			drift.Stale = append(drift.Stale, o.Name)
		}
	}
	return drift, nil
}

func (s *OptionStore) wrap(enumType string, err error) error {
	switch {
	case IsDuplicateKey(err):
		return fmt.Errorf("%w: %s: %v", ErrDuplicateOption, enumType, err)
	case IsMissingTable(err):
		return fmt.Errorf("%w: %s: %v", ErrNoOptionTable, enumType, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("enum options %s: %w", enumType, err)
	}
}

func byType(enumType string) *types.QueryFilter {
	return types.NewQueryFilter("enum_type = ?", enumType)
}

func optionsOf(table baseenum.Descriptor) []*EnumOption {
	entries := table.Entries()
	now := time.Now()
	rows := make([]*EnumOption, len(entries))
	for i, e := range entries {
		value, kind := formatValue(e.Value)
		rows[i] = &EnumOption{
			EnumType:  table.TypeName(),
			Name:      e.Name,
			Value:     value,
			ValueKind: kind,
			Position:  i,
			SyncedAt:  now,
		}
	}
	return rows
}

// formatValue renders the underlying value of v and its reflect.Kind, so
// named types with a String method are stored by value, not by name.
func formatValue(v interface{}) (string, string) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", rv.Kind().String()
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Invalid:
		return "", "nil"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), rv.Kind().String()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), rv.Kind().String()
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits()), rv.Kind().String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), rv.Kind().String()
	case reflect.String:
		return rv.String(), rv.Kind().String()
	default:
		return fmt.Sprintf("%+v", rv.Interface()), rv.Kind().String()
	}
}

// SyncRegistered opens the configured database and syncs every enum table
// cached so far, filtered by cfg.Types.
func SyncRegistered(ctx context.Context, cfg *SyncConfig) error {
	if cfg == nil {
		return fmt.Errorf("sync configuration cannot be empty")
	}
	cfg.Log.apply()
	db, err := Open(ctx, &cfg.Connection)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	store := NewOptionStore(db)
	if cfg.CreateTable {
		if err := store.CreateTable(ctx); err != nil {
			return err
		}
	}
	return store.SyncAll(ctx, cfg.Selected(baseenum.Registered())...)
}
