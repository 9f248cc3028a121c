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
	"errors"
	"strings"

	"github.com/chatforge/mucext/extinfo"
	"github.com/chatforge/mucext/internal/logctx"
)

var (
	// ErrEmptyFormTypeName is returned when a mutation names no form type.
	ErrEmptyFormTypeName = errors.New("form type name must not be empty")
	// ErrEmptyVarName is returned when a field mutation names no variable.
	ErrEmptyVarName = errors.New("field variable name must not be empty")
)

// optional normalizes a blank string to absent.
func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// AddForm records an (empty) extension form for a room. Re-adding an
// existing form has no functional effect, although another marker row is
// written. Backing-store failures are logged and the write is lost; the
// room's cache entry is invalidated either way.
func (s *Store) AddForm(ctx context.Context, room, formTypeName string) error {
	if strings.TrimSpace(formTypeName) == "" {
		return ErrEmptyFormTypeName
	}
	room = extinfo.BareRoom(room)
	ll := logctx.FromContext(ctx)
	ll.Debug("adding extension form", "room", room, "formTypeName", formTypeName)

	s.locks.Lock(room)
	defer s.locks.Unlock(room)

	err := s.backend.InsertRow(ctx, room, extinfo.FormRow{FormTypeName: formTypeName})
	if err != nil {
		ll.Error("failed to add extension form",
			"room", room, "formTypeName", formTypeName, "error", err)
	}

	// Purge rather than patch; the next read repopulates from the
	// source of truth.
	s.purgeCache(ctx, room)
	return nil
}

// RemoveForm deletes a form and all of its fields for a room. Removing a
// form that does not exist is not an error.
func (s *Store) RemoveForm(ctx context.Context, room, formTypeName string) error {
	room = extinfo.BareRoom(room)
	ll := logctx.FromContext(ctx)
	ll.Debug("removing extension form", "room", room, "formTypeName", formTypeName)

	s.locks.Lock(room)
	defer s.locks.Unlock(room)

	if err := s.backend.DeleteForm(ctx, room, formTypeName); err != nil {
		ll.Error("failed to remove extension form",
			"room", room, "formTypeName", formTypeName, "error", err)
	}

	s.purgeCache(ctx, room)
	return nil
}

// AddField adds a field to a form, implicitly creating the form when it does
// not yet exist. Adding a field whose variable name is already present
// appends the value, turning the field multi-valued; when rows disagree on a
// label, which label survives is unspecified. Blank label or value is stored
// as absent.
func (s *Store) AddField(ctx context.Context, room, formTypeName, varName, label, value string) error {
	if strings.TrimSpace(formTypeName) == "" {
		return ErrEmptyFormTypeName
	}
	if strings.TrimSpace(varName) == "" {
		return ErrEmptyVarName
	}
	room = extinfo.BareRoom(room)
	ll := logctx.FromContext(ctx)
	ll.Debug("adding extension form field",
		"room", room, "formTypeName", formTypeName, "varName", varName)

	s.locks.Lock(room)
	defer s.locks.Unlock(room)

	row := extinfo.FormRow{
		FormTypeName: formTypeName,
		VarName:      &varName,
		Label:        optional(label),
		Value:        optional(value),
	}
	if err := s.backend.InsertRow(ctx, room, row); err != nil {
		ll.Error("failed to add extension form field",
			"room", room, "formTypeName", formTypeName, "varName", varName, "error", err)
	}

	s.purgeCache(ctx, room)
	return nil
}

// RemoveField deletes all stored entries for a field on a form. Removing a
// field that does not exist is not an error.
func (s *Store) RemoveField(ctx context.Context, room, formTypeName, varName string) error {
	room = extinfo.BareRoom(room)
	ll := logctx.FromContext(ctx)
	ll.Debug("removing extension form field",
		"room", room, "formTypeName", formTypeName, "varName", varName)

	s.locks.Lock(room)
	defer s.locks.Unlock(room)

	if err := s.backend.DeleteField(ctx, room, formTypeName, varName); err != nil {
		ll.Error("failed to remove extension form field",
			"room", room, "formTypeName", formTypeName, "varName", varName, "error", err)
	}

	s.purgeCache(ctx, room)
	return nil
}
