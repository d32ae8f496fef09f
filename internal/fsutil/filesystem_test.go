package fsutil

import (
	"errors"
	"io"
	"io/fs"
	"testing"
)

func TestMemoryFileSystemRoundTrip(t *testing.T) {
	m := NewMemoryFileSystem()

	w, err := m.Create("out/figure.png")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := w.Write([]byte("png-bytes")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := m.ReadFile("out/figure.png")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("ReadFile = %q, want %q", data, "png-bytes")
	}

	f, err := m.Open("out/figure.png")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	got, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "png-bytes" {
		t.Errorf("Open read = %q, want %q", got, "png-bytes")
	}
}

func TestMemoryFileSystemMissingFile(t *testing.T) {
	m := NewMemoryFileSystem()

	if _, err := m.Open("nope.csv"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open missing: got %v, want fs.ErrNotExist", err)
	}
	if _, err := m.Stat("nope.csv"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat missing: got %v, want fs.ErrNotExist", err)
	}
	if m.Exists("nope.csv") {
		t.Error("Exists reported a missing file")
	}
}

func TestMemoryFileSystemCreateOverwrites(t *testing.T) {
	m := NewMemoryFileSystem()

	if err := m.WriteFile("fig.png", []byte("old"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	w, err := m.Create("fig.png")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := w.Write([]byte("new")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := m.ReadFile("fig.png")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "new" {
		t.Errorf("overwrite produced %q, want %q", data, "new")
	}
}

func TestMemoryFileSystemMkdirAll(t *testing.T) {
	m := NewMemoryFileSystem()

	if err := m.MkdirAll("a/b/c", 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	for _, dir := range []string{"a", "a/b", "a/b/c"} {
		if !m.Exists(dir) {
			t.Errorf("directory %q missing after MkdirAll", dir)
		}
	}

	info, err := m.Stat("a/b")
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if !info.IsDir() {
		t.Error("Stat on directory reported a file")
	}
}
