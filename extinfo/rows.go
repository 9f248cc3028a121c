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

package extinfo

// GroupRows marshals raw storage rows into ExtDataForm instances.
//
// The input is expected to relate to exactly one room; behavior is
// unspecified when rows for more than one room are mixed. Every distinct
// form type present yields one output form, even when its only row is a
// nil-VarName existence marker. Rows sharing a variable name are condensed
// into one multi-valued field: values are concatenated with nil values
// dropped, and the label is taken from the first row seen for that variable
// name. When rows disagree on a label, which one survives is unspecified.
//
// A nil or empty input yields nil, which callers must treat as "no forms
// stored for this room" rather than an empty list.
func GroupRows(rows []FormRow) []ExtDataForm {
	if len(rows) == 0 {
		return nil
	}

	formOrder := make([]string, 0, 4)
	rowsByForm := make(map[string][]FormRow, 4)
	for _, row := range rows {
		if _, seen := rowsByForm[row.FormTypeName]; !seen {
			formOrder = append(formOrder, row.FormTypeName)
		}
		rowsByForm[row.FormTypeName] = append(rowsByForm[row.FormTypeName], row)
	}

	forms := make([]ExtDataForm, 0, len(formOrder))
	for _, formTypeName := range formOrder {
		form := ExtDataForm{FormTypeName: formTypeName}

		varOrder := make([]string, 0, 4)
		rowsByVar := make(map[string][]FormRow, 4)
		for _, row := range rowsByForm[formTypeName] {
			// Nil-VarName rows only mark the form's existence.
			if row.VarName == nil {
				continue
			}
			if _, seen := rowsByVar[*row.VarName]; !seen {
				varOrder = append(varOrder, *row.VarName)
			}
			rowsByVar[*row.VarName] = append(rowsByVar[*row.VarName], row)
		}

		for _, varName := range varOrder {
			group := rowsByVar[varName]
			field := Field{VarName: varName}
			if group[0].Label != nil {
				field.Label = *group[0].Label
			}
			for _, row := range group {
				if row.Value != nil {
					field.Values = append(field.Values, *row.Value)
				}
			}
			form.Fields = append(form.Fields, field)
		}

		forms = append(forms, form)
	}

	return forms
}
