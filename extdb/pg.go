// Copyright (C) 2025 Chatforge, Inc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, version 3.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package extdb

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chatforge/mucext/extinfo"
)

const (
	sqlInsertRow   = `INSERT INTO mucextinfo (room, formtypename, varname, label, varvalue) VALUES ($1, $2, $3, $4, $5)`
	sqlDeleteForm  = `DELETE FROM mucextinfo WHERE room = $1 AND formtypename = $2`
	sqlDeleteField = `DELETE FROM mucextinfo WHERE room = $1 AND formtypename = $2 AND varname = $3`
	sqlFetchRows   = `SELECT formtypename, varname, label, varvalue FROM mucextinfo WHERE room = $1 ORDER BY formtypename`
)

// Backend is the durable storage for (room, form, field) rows. The Postgres
// implementation is PGBackend; tests substitute their own.
type Backend interface {
	FetchRows(ctx context.Context, room string) ([]extinfo.FormRow, error)
	InsertRow(ctx context.Context, room string, row extinfo.FormRow) error
	DeleteForm(ctx context.Context, room, formTypeName string) error
	DeleteField(ctx context.Context, room, formTypeName, varName string) error
}

// PGBackend stores rows in the mucextinfo Postgres table.
type PGBackend struct {
	pool *pgxpool.Pool
}

var _ Backend = (*PGBackend)(nil)

// NewPGBackend creates a Backend over the given connection pool.
func NewPGBackend(pool *pgxpool.Pool) *PGBackend {
	return &PGBackend{pool: pool}
}

// Pool returns the underlying connection pool.
func (b *PGBackend) Pool() *pgxpool.Pool {
	return b.pool
}

func (b *PGBackend) FetchRows(ctx context.Context, room string) ([]extinfo.FormRow, error) {
	rows, err := b.pool.Query(ctx, sqlFetchRows, room)
	if err != nil {
		return nil, fmt.Errorf("query rows for room %s: %w", room, err)
	}
	defer rows.Close()

	var result []extinfo.FormRow
	for rows.Next() {
		var row extinfo.FormRow
		if err := rows.Scan(&row.FormTypeName, &row.VarName, &row.Label, &row.Value); err != nil {
			return nil, fmt.Errorf("scan row for room %s: %w", room, err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read rows for room %s: %w", room, err)
	}
	return result, nil
}

func (b *PGBackend) InsertRow(ctx context.Context, room string, row extinfo.FormRow) error {
	_, err := b.pool.Exec(ctx, sqlInsertRow, room, row.FormTypeName, row.VarName, row.Label, row.Value)
	if err != nil {
		return fmt.Errorf("insert row for room %s: %w", room, err)
	}
	return nil
}

func (b *PGBackend) DeleteForm(ctx context.Context, room, formTypeName string) error {
	_, err := b.pool.Exec(ctx, sqlDeleteForm, room, formTypeName)
	if err != nil {
		return fmt.Errorf("delete form %s for room %s: %w", formTypeName, room, err)
	}
	return nil
}

func (b *PGBackend) DeleteField(ctx context.Context, room, formTypeName, varName string) error {
	_, err := b.pool.Exec(ctx, sqlDeleteField, room, formTypeName, varName)
	if err != nil {
		return fmt.Errorf("delete field %s from form %s for room %s: %w", varName, formTypeName, room, err)
	}
	return nil
}
