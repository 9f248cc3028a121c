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

package disco

import (
	"github.com/chatforge/mucext/extinfo"
	"github.com/chatforge/mucext/xdata"
)

// Merge combines a set of discovery data forms with one stored extension
// form and returns the combined set.
//
// The target form is the member of dataForms whose FORM_TYPE first value
// matches the extension's form type name; when no such form exists, a new
// result-type form carrying a hidden FORM_TYPE field is synthesized. Each
// extension field is added to the target, or appended to a same-named field
// that already exists there, with extension values after existing ones. A
// field that ends up with more than one value is reclassified text-multi;
// this is re-evaluated on every merge.
//
// Merge never mutates its inputs: the matched form is deep-copied before it
// is augmented, so forms shared with a cache stay untouched. No ordering is
// guaranteed over the returned set.
func Merge(dataForms []*xdata.DataForm, ext *extinfo.ExtDataForm) []*xdata.DataForm {
	result := make([]*xdata.DataForm, 0, len(dataForms)+1)
	result = append(result, dataForms...)

	if ext == nil {
		return result
	}

	target := -1
	for i, form := range result {
		if form.FormTypeName() == ext.FormTypeName {
			target = i
			break
		}
	}

	var form *xdata.DataForm
	if target >= 0 {
		form = result[target].Copy()
		result[target] = form
	} else {
		form = xdata.NewResultForm()
		form.AddField(xdata.FormTypeVar, "", xdata.Hidden).AddValue(ext.FormTypeName)
		result = append(result, form)
	}

	for _, extField := range ext.Fields {
		field := form.Field(extField.VarName)
		if field == nil {
			field = form.AddField(extField.VarName, extField.Label, xdata.TextSingle)
		}
		for _, value := range extField.Values {
			field.AddValue(value)
		}
		if field.IsMulti() {
			field.Type = xdata.TextMulti
		}
	}

	return result
}
