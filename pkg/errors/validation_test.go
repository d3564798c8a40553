package errors

import (
	"math"
	"testing"
)

func TestValidateRatio(t *testing.T) {
	tests := []struct {
		name    string
		ratio   float64
		wantErr bool
	}{
		{name: "zero", ratio: 0, wantErr: false},
		{name: "one", ratio: 1, wantErr: false},
		{name: "middle", ratio: 0.5, wantErr: false},
		{name: "negative", ratio: -0.1, wantErr: true},
		{name: "above one", ratio: 1.1, wantErr: true},
		{name: "nan", ratio: math.NaN(), wantErr: true},
		{name: "positive infinity", ratio: math.Inf(1), wantErr: true},
		{name: "negative infinity", ratio: math.Inf(-1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRatio(tt.ratio)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRatio(%v) error = %v, wantErr %v", tt.ratio, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidRatio) {
				t.Errorf("ValidateRatio(%v) code = %q, want INVALID_RATIO", tt.ratio, GetCode(err))
			}
		})
	}
}

func TestValidateLayoutName(t *testing.T) {
	tests := []struct {
		name    string
		layout  string
		wantErr bool
	}{
		{name: "simple", layout: "fibonacci", wantErr: false},
		{name: "symbolic", layout: "|+|", wantErr: false},
		{name: "empty", layout: "", wantErr: true},
		{name: "whitespace", layout: "main stack", wantErr: true},
		{name: "path separator", layout: "a/b", wantErr: true},
		{name: "control character", layout: "bad\x00name", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLayoutName(tt.layout)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLayoutName(%q) error = %v, wantErr %v", tt.layout, err, tt.wantErr)
			}
		})
	}
}
