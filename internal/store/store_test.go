package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blackwell-systems/lendctl/internal/store"
)

func TestFileStore_LoadAbsent(t *testing.T) {
	s := store.NewFileStore(t.TempDir())
	data, ok, err := s.Load("books")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Error("Load reported ok=true for absent collection")
	}
	if data != nil {
		t.Errorf("Load returned data for absent collection: %q", data)
	}
}

func TestFileStore_SaveThenLoad(t *testing.T) {
	s := store.NewFileStore(filepath.Join(t.TempDir(), "nested", "dir"))
	want := []byte(`[{"id":"x"}]`)
	if err := s.Save("books", want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, ok, err := s.Load("books")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("Load reported ok=false after Save")
	}
	if string(got) != string(want) {
		t.Errorf("Load = %q, want %q", got, want)
	}
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	s := store.NewFileStore(t.TempDir())
	if err := s.Save("loans", []byte("[1]")); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if err := s.Save("loans", []byte("[2]")); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	got, _, err := s.Load("loans")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != "[2]" {
		t.Errorf("Load = %q, want %q", got, "[2]")
	}
}

func TestFileStore_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	s := store.NewFileStore(dir)
	if err := s.Save("books", []byte("[]")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestMemStore_RoundTrip(t *testing.T) {
	s := store.NewMemStore()
	if _, ok, _ := s.Load("books"); ok {
		t.Error("empty MemStore reported ok=true")
	}
	if err := s.Save("books", []byte("[]")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, ok, err := s.Load("books")
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if string(got) != "[]" {
		t.Errorf("Load = %q, want []", got)
	}
}
