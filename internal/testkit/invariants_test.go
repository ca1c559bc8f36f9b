package testkit

import (
	"strings"
	"testing"

	"advent/internal/source"
)

func TestCheckLineInvariants(t *testing.T) {
	inputs := []string{
		"",
		"\n",
		"a",
		"a\n",
		"a\n\nb\n",
		"1000\n2000\n\n3000",
		"\xef\xbb\xbfA Y\r\nB X\r\n",
	}
	for _, in := range inputs {
		fs := source.NewFileSet()
		id := fs.AddVirtual("in.txt", []byte(in))
		if err := CheckLineInvariants(fs.Get(id)); err != nil {
			t.Errorf("%q: %v", in, err)
		}
	}
}

func TestCheckLineInvariantsCatchesBadIndex(t *testing.T) {
	f := &source.File{Content: []byte("a\nb\n"), LineIdx: []uint32{1}}
	err := CheckLineInvariants(f)
	if err == nil || !strings.Contains(err.Error(), "entries") {
		t.Fatalf("expected entry count error, got %v", err)
	}
	f = &source.File{Content: []byte("ab\n"), LineIdx: []uint32{1}}
	if err := CheckLineInvariants(f); err == nil {
		t.Fatal("expected error for index not on a newline")
	}
	if err := CheckLineInvariants(nil); err == nil {
		t.Fatal("expected error for nil file")
	}
}
