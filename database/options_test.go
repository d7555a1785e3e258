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

package database_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomoncle/baseenum"
	"github.com/tomoncle/baseenum/database"
	"github.com/tomoncle/baseenum/utils"
	"github.com/uptrace/bun"
)

func TestOptionStoreSyncAndList(t *testing.T) {
	ctx := context.Background()
	store := database.NewOptionStore(openMemoryDB(t, "sync_and_list"))
	logger := &recordingLogger{}
	store.SetLogger(logger)
	require.NoError(t, store.CreateTable(ctx))
	require.NoError(t, store.CreateTable(ctx))

	table := baseenum.MustLoad[Color]()
	require.NoError(t, store.Sync(ctx, table))
	require.NoError(t, store.Sync(ctx, table))

	options, err := store.List(ctx, "database_test.Color")
	require.NoError(t, err)
	require.Len(t, options, 3)
	for i, want := range []struct{ name, value string }{{"RED", "1"}, {"GREEN", "2"}, {"BLUE", "3"}} {
		assert.Equal(t, want.name, options[i].Name)
		assert.Equal(t, want.value, options[i].Value)
		assert.Equal(t, "int", options[i].ValueKind)
		assert.Equal(t, i, options[i].Position)
		assert.False(t, options[i].SyncedAt.IsZero())
	}

	n, err := store.Count(ctx, "database_test.Color")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Contains(t, logger.messages, "Enum options synced")
}

func TestOptionStoreStoresValuesOfStringers(t *testing.T) {
	ctx := context.Background()
	store := database.NewOptionStore(openMemoryDB(t, "stringer"))
	require.NoError(t, store.CreateTable(ctx))

	table := baseenum.MustLoad[Tone]()
	require.NoError(t, store.Sync(ctx, table))

	options, err := store.List(ctx, "database_test.Tone")
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, "LOW", options[0].Name)
	assert.Equal(t, "1", options[0].Value)
	assert.Equal(t, "HIGH", options[1].Name)
	assert.Equal(t, "2", options[1].Value)
	for _, o := range options {
		assert.Equal(t, "int", o.ValueKind)
	}

	drift, err := store.Diff(ctx, table)
	require.NoError(t, err)
	assert.True(t, drift.Empty())
}

func TestOptionStoreSyncAllKeepsTypesApart(t *testing.T) {
	ctx := context.Background()
	store := database.NewOptionStore(openMemoryDB(t, "sync_all"))
	require.NoError(t, store.CreateTable(ctx))

	shapes, err := baseenum.NewTable("shape", baseenum.Const("CIRCLE", "c"), baseenum.Const("SQUARE", "s"))
	require.NoError(t, err)
	require.NoError(t, store.SyncAll(ctx, baseenum.MustLoad[Color](), shapes))

	n, err := store.Count(ctx, "shape")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = store.Count(ctx, "database_test.Color")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	fewer, err := baseenum.NewTable("shape", baseenum.Const("CIRCLE", "c"))
	require.NoError(t, err)
	require.NoError(t, store.Sync(ctx, fewer))
	n, err = store.Count(ctx, "shape")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = store.Count(ctx, "database_test.Color")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestOptionStoreDiff(t *testing.T) {
	ctx := context.Background()
	store := database.NewOptionStore(openMemoryDB(t, "diff"))
	require.NoError(t, store.CreateTable(ctx))

	persisted, err := baseenum.NewTable("size", baseenum.Const("S", 1), baseenum.Const("M", 2))
	require.NoError(t, err)
	require.NoError(t, store.Sync(ctx, persisted))

	drift, err := store.Diff(ctx, persisted)
	require.NoError(t, err)
	assert.True(t, drift.Empty())

	grown, err := baseenum.NewTable("size", baseenum.Const("S", 1), baseenum.Const("M", 3), baseenum.Const("L", 4))
	require.NoError(t, err)
	drift, err = store.Diff(ctx, grown)
	require.NoError(t, err)
	assert.Equal(t, "size", drift.EnumType)
	assert.Equal(t, []string{"L"}, drift.Missing)
	assert.Equal(t, []string{"M"}, drift.Changed)
	assert.Empty(t, drift.Stale)

	shrunk, err := baseenum.NewTable("size", baseenum.Const("S", 1))
	require.NoError(t, err)
	drift, err = store.Diff(ctx, shrunk)
	require.NoError(t, err)
	assert.Equal(t, []string{"M"}, drift.Stale)
	assert.False(t, drift.Empty())
}

func TestOptionStoreWithoutTable(t *testing.T) {
	store := database.NewOptionStore(openMemoryDB(t, "no_table"))
	_, err := store.List(context.Background(), "database_test.Color")
	assert.ErrorIs(t, err, database.ErrNoOptionTable)
}

type paint struct {
	bun.BaseModel `bun:"table:paints"`

	ID    int64                  `bun:"id,pk,autoincrement"`
	Color baseenum.Column[Color] `bun:"color,type:varchar(16),notnull"`
}

func TestColumnRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openMemoryDB(t, "column")
	_, err := db.NewCreateTable().Model((*paint)(nil)).Exec(ctx)
	require.NoError(t, err)

	_, err = db.NewInsert().Model(&paint{Color: baseenum.NewColumn(Green)}).Exec(ctx)
	require.NoError(t, err)

	var raw string
	require.NoError(t, db.NewSelect().Table("paints").Column("color").Limit(1).Scan(ctx, &raw))
	assert.Equal(t, "GREEN", raw)

	var got paint
	require.NoError(t, db.NewSelect().Model(&got).Limit(1).Scan(ctx))
	assert.Equal(t, Green, got.Color.Enum)

	_, err = db.NewInsert().Model(&paint{Color: baseenum.NewColumn(Color(9))}).Exec(ctx)
	assert.Error(t, err)
}

func TestSyncRegistered(t *testing.T) {
	ctx := context.Background()
	held := openMemoryDB(t, "sync_registered")
	baseenum.MustLoad[Color]()

	cfg := &database.SyncConfig{
		Connection:  *memoryConfig("sync_registered"),
		CreateTable: true,
		Types:       []string{"database_test.Color"},
	}
	path := filepath.Join(t.TempDir(), "sync.yaml")
	require.NoError(t, cfg.Export(path))
	loaded, err := database.LoadSyncConfig(path)
	require.NoError(t, err)

	require.NoError(t, database.SyncRegistered(ctx, loaded))

	options, err := database.NewOptionStore(held).List(ctx, "database_test.Color")
	require.NoError(t, err)
	assert.Len(t, options, 3)
}

func TestSyncRegisteredAppliesLogLevel(t *testing.T) {
	var buf bytes.Buffer
	utils.ConfigureConsoleOutput(&buf)
	database.SetLogger(nil)
	t.Cleanup(func() {
		level := utils.EnvDefaultString("LOG_LEVEL", "info")
		utils.SetAllLoggersLevel(utils.ParseLogLevel(level))
		if dl, ok := database.GetLogger().(*database.DefaultLogger); ok {
			dl.SetLevel(level)
		}
		utils.ConfigureConsoleOutput(nil)
	})

	ctx := context.Background()
	held := openMemoryDB(t, "sync_log_level")
	require.NoError(t, database.NewOptionStore(held).CreateTable(ctx))
	baseenum.MustLoad[Color]()
	cfg := &database.SyncConfig{
		Connection: *memoryConfig("sync_log_level"),
		Types:      []string{"database_test.Color"},
		Log:        database.LogConfig{Level: "error"},
	}

	require.NoError(t, database.SyncRegistered(ctx, cfg))
	assert.NotContains(t, buf.String(), "Enum options synced")

	cfg.Log.Level = "info"
	require.NoError(t, database.SyncRegistered(ctx, cfg))
	assert.Contains(t, buf.String(), "Enum options synced")
}
