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

package repository

import (
	"context"

	"github.com/tomoncle/baseenum/types"

	"github.com/uptrace/bun"
)

// QueryRepository defines read operations for a generic entity type.
type QueryRepository[T any] interface {
	List(ctx context.Context, filter *types.QueryFilter, orders ...string) ([]*T, error)

	Count(ctx context.Context, filter *types.QueryFilter) (int, error)
}

// TransactionRepository defines writes executed on a *bun.DB or within a
// bun.Tx; both satisfy bun.IDB.
type TransactionRepository[T any] interface {
	CreateWithTx(ctx context.Context, tx bun.IDB, entity ...*T) error
	DeleteWithTx(ctx context.Context, tx bun.IDB, filter *types.QueryFilter) (int64, error)
}

// Repository combines reads and transactional writes and exposes the
// underlying database for schema statements and transactions.
type Repository[T any] interface {
	QueryRepository[T]
	TransactionRepository[T]
	DB() *bun.DB
}
