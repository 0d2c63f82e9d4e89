package timefmt

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOk bool
	}{
		{name: "bare seconds", input: "95", want: 95, wantOk: true},
		{name: "minutes and seconds", input: "3:42", want: 222, wantOk: true},
		{name: "hours", input: "1:02:03", want: 3723, wantOk: true},
		{name: "surrounding space", input: "  0:07 ", want: 7, wantOk: true},
		{name: "space around components", input: "1 : 05", want: 65, wantOk: true},
		{name: "long minutes", input: "75:00", want: 4500, wantOk: true},
		{name: "zero", input: "0", want: 0, wantOk: true},
		{name: "seconds overflow", input: "1:60", wantOk: false},
		{name: "minutes overflow with hours", input: "1:60:00", wantOk: false},
		{name: "empty", input: "", wantOk: false},
		{name: "whitespace", input: "   ", wantOk: false},
		{name: "negative", input: "-5", wantOk: false},
		{name: "fraction", input: "1.5", wantOk: false},
		{name: "empty component", input: "1::2", wantOk: false},
		{name: "trailing colon", input: "3:", wantOk: false},
		{name: "four components", input: "1:2:3:4", wantOk: false},
		{name: "letters", input: "abc", wantOk: false},
		{name: "signed component", input: "1:+5", wantOk: false},
		{name: "largest stored time", input: "2147483647", want: MaxSeconds, wantOk: true},
		{name: "largest as hours", input: "596523:14:07", want: MaxSeconds, wantOk: true},
		{name: "one past largest", input: "2147483648", wantOk: false},
		{name: "minutes past largest", input: "35791395:00", wantOk: false},
		{name: "int64 minutes", input: "9223372036854775807:00", wantOk: false},
		{name: "huge hours", input: "3000000000000000:00:00", wantOk: false},
		{name: "beyond int64", input: "99999999999999999999", wantOk: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Parse(tt.input)
			if ok != tt.wantOk {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.input, ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	ptr := func(v float64) *float64 { return &v }
	tests := []struct {
		name  string
		input *float64
		want  string
	}{
		{name: "absent", input: nil, want: "-"},
		{name: "zero", input: ptr(0), want: "0:00"},
		{name: "seconds", input: ptr(7), want: "0:07"},
		{name: "minutes", input: ptr(222), want: "3:42"},
		{name: "floors fractions", input: ptr(222.9), want: "3:42"},
		{name: "clamps negatives", input: ptr(-12), want: "0:00"},
		{name: "just under an hour", input: ptr(3599), want: "59:59"},
		{name: "one hour", input: ptr(3600), want: "1:00:00"},
		{name: "hours", input: ptr(3723), want: "1:02:03"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Format(tt.input); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatInt(t *testing.T) {
	var absent *int
	if got := Format(absent); got != Placeholder {
		t.Errorf("Format(nil) = %q", got)
	}
	v := 61
	if got := Format(&v); got != "1:01" {
		t.Errorf("Format(61) = %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	for s := 0; s <= 3*3600+5; s++ {
		v := s
		got, ok := Parse(Format(&v))
		if !ok || got != s {
			t.Fatalf("Parse(Format(%d)) = %d, %v", s, got, ok)
		}
	}
	for _, s := range []int{86399, 86400, 360000, 1 << 30} {
		v := s
		if got, ok := Parse(Format(&v)); !ok || got != s {
			t.Fatalf("Parse(Format(%d)) = %d, %v", s, got, ok)
		}
	}
}

func TestDelta(t *testing.T) {
	slower := 12.5
	faster := -75.0
	if got := Delta(&slower); got != "+0:12" {
		t.Errorf("Delta(12.5) = %q", got)
	}
	if got := Delta(&faster); got != "-1:15" {
		t.Errorf("Delta(-75) = %q", got)
	}
	if got := Delta(nil); got != Placeholder {
		t.Errorf("Delta(nil) = %q", got)
	}
}
