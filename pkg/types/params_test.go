package types_test

import (
	"testing"

	"github.com/surquest/icon-picker/pkg/errors"
	"github.com/surquest/icon-picker/pkg/types"
)

func TestRenderParamsValidate(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		color     string
		wantErr   bool
		wantColor string
	}{
		{name: "minimum_size", size: 16, color: "#336699", wantColor: "#336699"},
		{name: "maximum_size", size: 512, color: "#336699", wantColor: "#336699"},
		{name: "below_minimum", size: 15, color: "#336699", wantErr: true},
		{name: "above_maximum", size: 513, color: "#336699", wantErr: true},
		{name: "uppercase_hex", size: 64, color: "#ABCDEF", wantColor: "#abcdef"},
		{name: "lowercase_hex", size: 64, color: "#abcdef", wantColor: "#abcdef"},
		{name: "missing_hash", size: 64, color: "ff0000", wantColor: "#ff0000"},
		{name: "too_short", size: 64, color: "#fff", wantErr: true},
		{name: "too_long", size: 64, color: "#ff000000", wantErr: true},
		{name: "non_hex_digits", size: 64, color: "#ggijkl", wantErr: true},
		{name: "empty_color", size: 64, color: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := types.RenderParams{Size: tt.size, Color: tt.color}
			err := params.Validate()

			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() should reject invalid params")
				}
				if !errors.IsErrorCode(err, errors.ErrInvalidParams) {
					t.Errorf("Validate() error code = %v, want %v", errors.GetErrorCode(err), errors.ErrInvalidParams)
				}
				return
			}

			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
			if params.Color != tt.wantColor {
				t.Errorf("Validate() normalized color = %q, want %q", params.Color, tt.wantColor)
			}
		})
	}
}

func TestRenderParamsNormalizationIsCaseInsensitive(t *testing.T) {
	upper := types.RenderParams{Size: 64, Color: "#ABCDEF"}
	lower := types.RenderParams{Size: 64, Color: "#abcdef"}

	if err := upper.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
	if err := lower.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}

	if upper.Color != lower.Color {
		t.Errorf("normalized colors differ: %q vs %q", upper.Color, lower.Color)
	}
}

func TestIconRecordHasTag(t *testing.T) {
	rec := types.IconRecord{Name: "home", Tags: []string{"House", "navigation"}}

	if !rec.HasTag("house") {
		t.Error("HasTag() should match case-insensitively")
	}
	if rec.HasTag("star") {
		t.Error("HasTag() should not match a missing tag")
	}
}
