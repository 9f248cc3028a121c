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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatforge/mucext/extinfo"
	"github.com/chatforge/mucext/xdata"
)

func formByTypeName(forms []*xdata.DataForm, name string) *xdata.DataForm {
	for _, f := range forms {
		if f.FormTypeName() == name {
			return f
		}
	}
	return nil
}

func TestMergeNilOriginalsNilExtension(t *testing.T) {
	result := Merge(nil, nil)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestMergeEmptyOriginalsNilExtension(t *testing.T) {
	result := Merge([]*xdata.DataForm{}, nil)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestMergeNilOriginalsOneExtension(t *testing.T) {
	ext := &extinfo.ExtDataForm{
		FormTypeName: "testform",
		Fields: []extinfo.Field{
			{VarName: "testvar", Label: "testlabel", Values: []string{"testvalue"}},
		},
	}

	result := Merge(nil, ext)

	require.Len(t, result, 1)
	form := result[0]
	require.Len(t, form.Fields, 2) // FORM_TYPE plus the extension field

	formType := form.Field(xdata.FormTypeVar)
	require.NotNil(t, formType)
	assert.Equal(t, xdata.Hidden, formType.Type)
	assert.Equal(t, []string{"testform"}, formType.Values)

	field := form.Field("testvar")
	require.NotNil(t, field)
	assert.Equal(t, "testlabel", field.Label)
	assert.Equal(t, []string{"testvalue"}, field.Values)
	assert.Equal(t, xdata.TextSingle, field.Type)
}

func TestMergeDifferentFormType(t *testing.T) {
	orig := xdata.NewResultForm()
	orig.AddField(xdata.FormTypeVar, "", xdata.Hidden).AddValue("origform")
	orig.AddField("origvar", "origlabel", xdata.TextSingle).AddValue("origvalue")

	ext := &extinfo.ExtDataForm{
		FormTypeName: "extform",
		Fields: []extinfo.Field{
			{VarName: "extvar", Label: "extlabel", Values: []string{"extvalue"}},
		},
	}

	result := Merge([]*xdata.DataForm{orig}, ext)

	require.Len(t, result, 2)

	origResult := formByTypeName(result, "origform")
	require.NotNil(t, origResult)
	require.Len(t, origResult.Fields, 2)
	assert.Equal(t, []string{"origvalue"}, origResult.Field("origvar").Values)

	extResult := formByTypeName(result, "extform")
	require.NotNil(t, extResult)
	require.Len(t, extResult.Fields, 2)
	field := extResult.Field("extvar")
	require.NotNil(t, field)
	assert.Equal(t, "extlabel", field.Label)
	assert.Equal(t, []string{"extvalue"}, field.Values)
}

func TestMergeSameFormDifferentField(t *testing.T) {
	orig := xdata.NewResultForm()
	orig.AddField(xdata.FormTypeVar, "", xdata.Hidden).AddValue("origform")
	orig.AddField("origvar", "origlabel", xdata.TextSingle).AddValue("origvalue")

	ext := &extinfo.ExtDataForm{
		FormTypeName: "origform",
		Fields: []extinfo.Field{
			{VarName: "extvar", Label: "extlabel", Values: []string{"extvalue"}},
		},
	}

	result := Merge([]*xdata.DataForm{orig}, ext)

	require.Len(t, result, 1)
	form := formByTypeName(result, "origform")
	require.NotNil(t, form)
	require.Len(t, form.Fields, 3)
	assert.Equal(t, []string{"origvalue"}, form.Field("origvar").Values)
	assert.Equal(t, []string{"extvalue"}, form.Field("extvar").Values)
	assert.Equal(t, "extlabel", form.Field("extvar").Label)
}

func TestMergeSameFormSameFieldDifferentValue(t *testing.T) {
	orig := xdata.NewResultForm()
	orig.AddField(xdata.FormTypeVar, "", xdata.Hidden).AddValue("origform")
	orig.AddField("origvar", "origlabel", xdata.TextSingle).AddValue("origvalue")

	ext := &extinfo.ExtDataForm{
		FormTypeName: "origform",
		Fields: []extinfo.Field{
			{VarName: "origvar", Label: "origlabel", Values: []string{"extvalue"}},
		},
	}

	result := Merge([]*xdata.DataForm{orig}, ext)

	require.Len(t, result, 1)
	form := formByTypeName(result, "origform")
	require.NotNil(t, form)
	require.Len(t, form.Fields, 2)

	field := form.Field("origvar")
	require.NotNil(t, field)
	assert.Equal(t, "origlabel", field.Label)
	assert.Equal(t, []string{"origvalue", "extvalue"}, field.Values)
	assert.Equal(t, xdata.TextMulti, field.Type)
}

func TestMergeExtensionWithoutFields(t *testing.T) {
	// A malformed extension without fields still yields a form carrying
	// only the identity field.
	result := Merge(nil, &extinfo.ExtDataForm{FormTypeName: "emptyform"})

	require.Len(t, result, 1)
	require.Len(t, result[0].Fields, 1)
	assert.Equal(t, "emptyform", result[0].FormTypeName())
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	orig := xdata.NewResultForm()
	orig.AddField(xdata.FormTypeVar, "", xdata.Hidden).AddValue("origform")
	orig.AddField("origvar", "origlabel", xdata.TextSingle).AddValue("origvalue")
	originals := []*xdata.DataForm{orig}

	ext := &extinfo.ExtDataForm{
		FormTypeName: "origform",
		Fields: []extinfo.Field{
			{VarName: "origvar", Values: []string{"extvalue"}},
		},
	}

	_ = Merge(originals, ext)

	// The matched input form must be left exactly as it was.
	require.Len(t, orig.Fields, 2)
	assert.Equal(t, []string{"origvalue"}, orig.Field("origvar").Values)
	assert.Equal(t, xdata.TextSingle, orig.Field("origvar").Type)
	require.Len(t, originals, 1)
	assert.Same(t, orig, originals[0])
}
