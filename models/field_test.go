package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_UnmarshalUITypeNumber(t *testing.T) {
	var f Field
	require.NoError(t, json.Unmarshal([]byte(`{"field_id":"fld1","field_name":"Owner","type":11,"ui_type":3}`), &f))

	require.NotNil(t, f.UIType)
	assert.Equal(t, UIType("3"), *f.UIType)
	assert.Equal(t, 11, f.Type)
}

func TestField_UnmarshalUITypeString(t *testing.T) {
	var f Field
	require.NoError(t, json.Unmarshal([]byte(`{"field_id":"fld1","field_name":"Name","type":1,"ui_type":"Text"}`), &f))

	require.NotNil(t, f.UIType)
	assert.Equal(t, UIType("Text"), *f.UIType)
}

func TestField_UnmarshalUITypeAbsentOrNull(t *testing.T) {
	for _, raw := range []string{
		`{"field_id":"fld1","type":1}`,
		`{"field_id":"fld1","type":1,"ui_type":null}`,
	} {
		var f Field
		require.NoError(t, json.Unmarshal([]byte(raw), &f))
		assert.Nil(t, f.UIType, raw)
	}
}

func TestField_UnmarshalUITypeKeepsOtherValuesAsRawJSON(t *testing.T) {
	tests := []struct {
		raw  string
		want UIType
	}{
		{raw: `{"field_id":"fld1","ui_type":true}`, want: "true"},
		{raw: `{"field_id":"fld1","ui_type":{"x":1}}`, want: `{"x":1}`},
		{raw: `{"field_id":"fld1","ui_type":[1,2]}`, want: "[1,2]"},
	}
	for _, tt := range tests {
		var f Field
		require.NoError(t, json.Unmarshal([]byte(tt.raw), &f), tt.raw)
		require.NotNil(t, f.UIType, tt.raw)
		assert.Equal(t, tt.want, *f.UIType)
	}
}

func TestToken_BearerHeader(t *testing.T) {
	assert.Equal(t, "Bearer t-abc", Token{Value: "t-abc"}.BearerHeader())
}

func TestNewAppBuildInfo_FillsNA(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "")
	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}
