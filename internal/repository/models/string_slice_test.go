package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSlice_Value(t *testing.T) {
	tests := []struct {
		name    string
		s       StringSlice
		wantVal string
	}{
		{name: "nil slice", s: nil, wantVal: "[]"},
		{name: "empty slice", s: StringSlice{}, wantVal: "[]"},
		{name: "choices", s: StringSlice{"Stop", "Yield"}, wantVal: `["Stop","Yield"]`},
		{name: "element with quotes", s: StringSlice{`the "give way" line`}, wantVal: `["the \"give way\" line"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.s.Value()
			assert.NoError(t, err)
			assert.Equal(t, tt.wantVal, got)
		})
	}
}

func TestStringSlice_Scan(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    StringSlice
		wantErr bool
	}{
		{name: "NULL", value: nil, want: StringSlice{}},
		{name: "empty string", value: "", want: StringSlice{}},
		{name: "json null", value: []byte("null"), want: StringSlice{}},
		{name: "bytes", value: []byte(`["a","b"]`), want: StringSlice{"a", "b"}},
		{name: "string", value: `["Failure to yield"]`, want: StringSlice{"Failure to yield"}},
		{name: "unsupported type", value: 42, wantErr: true},
		{name: "malformed", value: "[", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s StringSlice
			err := s.Scan(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}
}
