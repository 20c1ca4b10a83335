package color

import (
	"errors"
	"regexp"
	"strings"
	"testing"
)

func TestInvert(t *testing.T) {
	tests := []struct {
		in   string
		bw   bool
		want string
	}{
		{"#ffffff", false, "#000000"},
		{"#000", false, "#ffffff"},
		{"234567", false, "#dcba98"},
		{"#121212", true, "#FFFFFF"},
		{"#feeade", true, "#000000"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Invert(tt.in, tt.bw)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Invert(%q, %v) = %q, want %q", tt.in, tt.bw, got, tt.want)
			}
		})
	}
}

func TestInvertSelfInverse(t *testing.T) {
	for _, in := range []string{"#abc", "#123456", "#00ff7f", "fedcba", "#0a0b0c"} {
		once, err := Invert(in, false)
		if err != nil {
			t.Fatal(err)
		}
		twice, err := Invert(once, false)
		if err != nil {
			t.Fatal(err)
		}
		want, _ := expand(in)
		if !strings.EqualFold(twice, want) {
			t.Errorf("Invert(Invert(%q)) = %q, want %q", in, twice, want)
		}
	}
}

func TestInvertInvalidFormat(t *testing.T) {
	for _, in := range []string{"#abcd", "", "#12345", "#1234567", "#ggg"} {
		_, err := Invert(in, false)
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Invert(%q) err = %v, want ErrInvalidFormat", in, err)
		}
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"#fff", true},
		{"red", true},
		{"", false},
		{"none", false},
		{"#abcd", false},
		{"notacolor", false},
	}
	for _, tt := range tests {
		if got := IsValid(tt.in); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRandom(t *testing.T) {
	re := regexp.MustCompile(`^#[0-9A-F]{6}$`)
	for i := 0; i < 20; i++ {
		if c := Random(); !re.MatchString(c) {
			t.Fatalf("Random() = %q", c)
		}
	}
}

func TestParse(t *testing.T) {
	c, err := Parse("#ff8000")
	if err != nil {
		t.Fatal(err)
	}
	if c.R != 0xff || c.G != 0x80 || c.B != 0 || c.A != 0xff {
		t.Errorf("Parse(#ff8000) = %+v", c)
	}
	c, err = Parse("Blue")
	if err != nil {
		t.Fatal(err)
	}
	if c.B != 0xff || c.R != 0 {
		t.Errorf("Parse(Blue) = %+v", c)
	}
	if _, err := Parse("nope"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Parse(nope) err = %v", err)
	}
}
