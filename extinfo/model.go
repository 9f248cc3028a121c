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

// Package extinfo holds the model for operator-defined service discovery
// extension data: fields and forms as they are persisted per chat room, and
// the transformation from raw storage rows into that model.
package extinfo

// Field is one named entry in an extension form. A field may carry zero or
// more values; an empty Label means the field has no human-readable label.
type Field struct {
	VarName string
	Label   string
	Values  []string
}

// ExtDataForm is one extension data form for a room: a form type identifier
// plus the fields stored for it. After grouping, at most one Field exists per
// variable name.
type ExtDataForm struct {
	FormTypeName string
	Fields       []Field
}

// FormRow is one raw persisted row. A row with a nil VarName marks the
// existence of a form that has no fields.
type FormRow struct {
	FormTypeName string
	VarName      *string
	Label        *string
	Value        *string
}
