package blobstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func exercise(t *testing.T, b Blob) {
	t.Helper()
	ctx := context.Background()

	if _, err := b.Get(ctx, "vcontrol"); !errors.Is(err, ErrBlobNotFound) {
		t.Fatalf("Get em chave vazia = %v, want ErrBlobNotFound", err)
	}
	if err := b.Put(ctx, "vcontrol", []byte(`{"a":1}`)); err != nil {
		t.Fatal(err)
	}
	if err := b.Put(ctx, "vcontrol", []byte(`{"a":2}`)); err != nil {
		t.Fatal(err)
	}
	got, err := b.Get(ctx, "vcontrol")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"a":2}` {
		t.Errorf("Get() = %s", got)
	}
	if err := b.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestMemory(t *testing.T) {
	m := NewMemory()
	exercise(t, m)
	if m.Puts() != 2 {
		t.Errorf("Puts() = %d", m.Puts())
	}
}

func TestMemory_CopiesData(t *testing.T) {
	m := NewMemory()
	data := []byte("abc")
	_ = m.Put(context.Background(), "k", data)
	data[0] = 'x'
	got, _ := m.Get(context.Background(), "k")
	if string(got) != "abc" {
		t.Errorf("Memory deveria copiar o conteúdo gravado, obteve %s", got)
	}
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(filepath.Join(dir, "dados", "vcontrol.json"))
	if err != nil {
		t.Fatal(err)
	}
	exercise(t, f)

	entries, err := os.ReadDir(filepath.Join(dir, "dados"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "vcontrol.json" {
		t.Errorf("arquivos temporários não foram removidos: %v", entries)
	}
}
