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
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tomoncle/baseenum"
	"github.com/tomoncle/baseenum/database"
	"github.com/uptrace/bun"
)

type Color int

const (
	Red Color = iota + 1
	Green
	Blue
)

func (Color) EnumConstants() []baseenum.Constant[Color] {
	return []baseenum.Constant[Color]{
		baseenum.Const("RED", Red),
		baseenum.Const("GREEN", Green),
		baseenum.Const("BLUE", Blue),
	}
}

// Tone prints its name, like most Go enums.
type Tone int

const (
	Low  Tone = 1
	High Tone = 2
)

func (Tone) EnumConstants() []baseenum.Constant[Tone] {
	return []baseenum.Constant[Tone]{
		baseenum.Const("LOW", Low),
		baseenum.Const("HIGH", High),
	}
}

func (t Tone) String() string { return baseenum.Name(t) }

func memoryConfig(name string) *database.ConnectionConfig {
	return &database.ConnectionConfig{
		Type:           "sqlite",
		DSN:            "file:" + name + "?mode=memory&cache=shared",
		MaxIdleConns:   1,
		MaxOpenConns:   1,
		ConnectTimeout: 5 * time.Second,
	}
}

// openMemoryDB opens a private in-memory SQLite database that lives until
// the test ends.
func openMemoryDB(t *testing.T, name string) *bun.DB {
	t.Helper()
	db, err := database.Open(context.Background(), memoryConfig(name))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) record(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}

func (l *recordingLogger) Debug(msg string, _ ...interface{}) { l.record(msg) }
func (l *recordingLogger) Info(msg string, _ ...interface{}) { l.record(msg) }
func (l *recordingLogger) Warn(msg string, _ ...interface{}) { l.record(msg) }
func (l *recordingLogger) Error(msg string, _ ...interface{}) { l.record(msg) }
