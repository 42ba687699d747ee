package crypto

import (
	"strings"
	"testing"
)

func TestBuildPoolAllCombinations(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		cs := Classes{
			Upper:   mask&1 != 0,
			Lower:   mask&2 != 0,
			Numbers: mask&4 != 0,
			Symbols: mask&8 != 0,
		}

		var allowed string
		wantLen := 0
		for _, c := range classOrder {
			if cs.Enabled(c) {
				allowed += c.Chars()
				wantLen += len(c.Chars())
			}
		}

		pool := BuildPool(cs)
		if len(pool) != wantLen {
			t.Errorf("BuildPool(%+v) length = %d, want %d", cs, len(pool), wantLen)
		}
		for _, ch := range pool {
			if !strings.ContainsRune(allowed, ch) {
				t.Errorf("BuildPool(%+v) contains %q outside enabled ranges", cs, ch)
			}
		}
	}
}

func TestBuildPoolOrder(t *testing.T) {
	tests := []struct {
		name string
		cs   Classes
		want string
	}{
		{
			name: "none enabled",
			cs:   Classes{},
			want: "",
		},
		{
			name: "uppercase only",
			cs:   Classes{Upper: true},
			want: "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		},
		{
			name: "lower and numbers",
			cs:   Classes{Lower: true, Numbers: true},
			want: lowercaseChars + numberChars,
		},
		{
			name: "all enabled",
			cs:   Classes{Upper: true, Lower: true, Numbers: true, Symbols: true},
			want: uppercaseChars + lowercaseChars + numberChars + symbolChars,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildPool(tt.cs); got != tt.want {
				t.Errorf("BuildPool() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildPoolAllClassesSize(t *testing.T) {
	pool := BuildPool(Classes{Upper: true, Lower: true, Numbers: true, Symbols: true})
	if len(pool) != 86 {
		t.Errorf("pool size = %d, want 86", len(pool))
	}
	if len(symbolChars) != 24 {
		t.Errorf("symbol set size = %d, want 24", len(symbolChars))
	}
}

func TestBuildPoolIndependentOfToggleOrder(t *testing.T) {
	var a, b Classes
	a.Toggle(Symbol)
	a.Toggle(Upper)
	a.Toggle(Number)

	b.Toggle(Number)
	b.Toggle(Upper)
	b.Toggle(Symbol)

	if BuildPool(a) != BuildPool(b) {
		t.Errorf("pools differ: %q vs %q", BuildPool(a), BuildPool(b))
	}
	if BuildPool(a) != BuildPool(a) {
		t.Error("BuildPool() is not deterministic")
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	var cs Classes
	cs.Toggle(Lower)
	if !cs.Lower || !cs.Any() {
		t.Fatal("Toggle() did not enable lowercase")
	}
	cs.Toggle(Lower)
	if cs.Lower || cs.Any() {
		t.Fatal("second Toggle() did not disable lowercase")
	}
}

func TestParseClass(t *testing.T) {
	tests := []struct {
		in      string
		want    Class
		wantErr error
	}{
		{in: "upper", want: Upper},
		{in: "Uppercase", want: Upper},
		{in: "lower", want: Lower},
		{in: "digits", want: Number},
		{in: " numbers ", want: Number},
		{in: "symbols", want: Symbol},
		{in: "emoji", wantErr: ErrUnknownClass},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClass(tt.in)
			if err != tt.wantErr {
				t.Fatalf("ParseClass(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseClass(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
