package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("input.txt", []byte("x = 1;"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	id2 := fs.Add("input.txt", []byte("y = 2;"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latestID, exists := fs.GetLatest("input.txt")
	if !exists {
		t.Fatal("Expected file to exist after Add")
	}
	if latestID != id2 {
		t.Errorf("Expected latest ID to be %d, got %d", id2, latestID)
	}
	if string(fs.Get(id1).Content) != "x = 1;" {
		t.Errorf("old version must stay addressable, got %q", fs.Get(id1).Content)
	}
	if fs.Len() != 2 {
		t.Errorf("Expected 2 files, got %d", fs.Len())
	}
}

func TestLoadNormalizesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	raw := []byte("\xEF\xBB\xBFint a;\r\nchar b;\r\n")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if got := string(f.Content); got != "int a;\nchar b;\n" {
		t.Fatalf("unexpected content %q", got)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("expected BOM and CRLF flags, got %b", f.Flags)
	}
	if f.Flags&FileVirtual != 0 {
		t.Fatalf("loaded file must not be virtual")
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestAddVirtualComposesNFC(t *testing.T) {
	fs := NewFileSet()
	// "e" + COMBINING ACUTE ACCENT
	id := fs.AddVirtual("v.txt", []byte("cafe\u0301"))
	f := fs.Get(id)
	if got := string(f.Content); got != "caf\u00e9" {
		t.Fatalf("expected composed text, got %q", got)
	}
	if f.Flags&FileNormalizedNFC == 0 || f.Flags&FileVirtual == 0 {
		t.Fatalf("unexpected flags %b", f.Flags)
	}
}

func TestResolveCountsRunes(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("r.txt", []byte("ab\n\u00e9x y\n"))
	f := fs.Get(id)

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{2, LineCol{1, 3}}, // '\n' itself
		{3, LineCol{2, 1}},
		{5, LineCol{2, 2}}, // after the two-byte 'é'
		{7, LineCol{2, 4}},
		{9, LineCol{3, 1}},
	}
	for _, tt := range tests {
		if got := f.Position(tt.off); got != tt.want {
			t.Errorf("Position(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}

	start, end := fs.Resolve(Span{File: id, Start: 3, End: 7})
	if start != (LineCol{2, 1}) || end != (LineCol{2, 4}) {
		t.Errorf("Resolve = %+v..%+v", start, end)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("l.txt", []byte("first\nsecond\nthird")))

	cases := map[uint32]string{0: "", 1: "first", 2: "second", 3: "third", 4: ""}
	for n, want := range cases {
		if got := f.GetLine(n); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestSpanEmptyAndLen(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	if !(Span{Start: 3, End: 3}).Empty() || a.Empty() || a.Len() != 4 {
		t.Fatalf("Empty/Len mismatch")
	}
	if a.String() != "1:4-8" {
		t.Fatalf("String = %q", a.String())
	}
}
