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

// Package xdata models XEP-0004 data forms as they appear in service
// discovery responses. Only the subset needed for discovery extensions is
// modeled; the wire encoding of forms is handled elsewhere.
package xdata

// FormType is the 'type' attribute of a data form.
type FormType string

const (
	// TypeResult marks a form that is a result of, or data attached to, a query.
	TypeResult FormType = "result"
)

// FieldType is the 'type' attribute of a form field.
type FieldType string

const (
	// Hidden fields are not shown to users. FORM_TYPE is always hidden.
	Hidden FieldType = "hidden"
	// TextSingle is the default type for fields carrying one value.
	TextSingle FieldType = "text-single"
	// TextMulti is the type for fields carrying more than one value.
	TextMulti FieldType = "text-multi"
)

// FormTypeVar is the conventional variable name of the hidden field that
// identifies a data form's schema.
const FormTypeVar = "FORM_TYPE"

// FormField is a single named field within a data form.
type FormField struct {
	Var    string
	Label  string
	Type   FieldType
	Values []string
}

// FirstValue returns the field's first value, or the empty string when the
// field carries no values.
func (f *FormField) FirstValue() string {
	if len(f.Values) == 0 {
		return ""
	}
	return f.Values[0]
}

// AddValue appends a value to the field.
func (f *FormField) AddValue(v string) {
	f.Values = append(f.Values, v)
}

// IsMulti reports whether the field carries more than one value.
func (f *FormField) IsMulti() bool {
	return len(f.Values) > 1
}

// DataForm is an ordered collection of form fields.
type DataForm struct {
	Type   FormType
	Fields []*FormField
}

// NewResultForm returns an empty form of type 'result'.
func NewResultForm() *DataForm {
	return &DataForm{Type: TypeResult}
}

// Field returns the field with the given variable name, or nil when the form
// has no such field.
func (d *DataForm) Field(varName string) *FormField {
	for _, f := range d.Fields {
		if f.Var == varName {
			return f
		}
	}
	return nil
}

// AddField appends a new field to the form and returns it.
func (d *DataForm) AddField(varName, label string, typ FieldType) *FormField {
	f := &FormField{Var: varName, Label: label, Type: typ}
	d.Fields = append(d.Fields, f)
	return f
}

// FormTypeName returns the first value of the form's FORM_TYPE field, or the
// empty string when the form carries no FORM_TYPE field.
func (d *DataForm) FormTypeName() string {
	if f := d.Field(FormTypeVar); f != nil {
		return f.FirstValue()
	}
	return ""
}

// Copy returns a deep copy of the form. Mutating the copy, including the
// value slices of its fields, leaves the original untouched.
func (d *DataForm) Copy() *DataForm {
	if d == nil {
		return nil
	}
	dup := &DataForm{Type: d.Type}
	if d.Fields != nil {
		dup.Fields = make([]*FormField, 0, len(d.Fields))
		for _, f := range d.Fields {
			nf := &FormField{Var: f.Var, Label: f.Label, Type: f.Type}
			if f.Values != nil {
				nf.Values = append([]string(nil), f.Values...)
			}
			dup.Fields = append(dup.Fields, nf)
		}
	}
	return dup
}
