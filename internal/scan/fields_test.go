package scan

import (
	"reflect"
	"testing"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		tok  string
		want Field
		ok   bool
	}{
		{tok: "rax=0000cafe", want: Field{Key: "rax", Value: "0000cafe"}, ok: true},
		{tok: "cs={0008", want: Field{Key: "cs", Value: "{0008"}, ok: true},
		{tok: "base=1=2", want: Field{Key: "base", Value: "1"}, ok: true},
		{tok: "iopl=0", ok: false},
		{tok: "iopl=3", ok: false},
		{tok: "xiopl=1", ok: false},
		{tok: "=0000", ok: false},
		{tok: "eflags=", ok: false},
		{tok: "nv", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			got, ok := parseField(tt.tok)
			if ok != tt.ok {
				t.Fatalf("parseField(%q) ok = %v, want %v", tt.tok, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Fatalf("parseField(%q) = %+v, want %+v", tt.tok, got, tt.want)
			}
		})
	}
}

func TestFields_FixedOffsetsAndClamping(t *testing.T) {
	lines := []string{
		"ts Guest state at power off:",
		"ts skipped=1",
		"ts a=1 b=2",
		"ts c=3",
		"ts d=4",
	}
	want := []Field{{"a", "1"}, {"b", "2"}, {"c", "3"}}
	if got := Fields(lines, 0); !reflect.DeepEqual(got, want) {
		t.Fatalf("Fields = %+v, want %+v", got, want)
	}

	short := lines[:3]
	if got := Fields(short, 0); !reflect.DeepEqual(got, want[:2]) {
		t.Fatalf("Fields(short) = %+v, want %+v", got, want[:2])
	}
	if got := Fields(lines[:1], 0); len(got) != 0 {
		t.Fatalf("Fields(marker only) = %+v, want none", got)
	}
}

func TestFields_FirstTokenDropped(t *testing.T) {
	lines := []string{"m", "", "ts=1 a=2", "b=3"}
	want := []Field{{"a", "2"}}
	if got := Fields(lines, 0); !reflect.DeepEqual(got, want) {
		t.Fatalf("Fields = %+v, want %+v", got, want)
	}
}
