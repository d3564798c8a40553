package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileCacheRoundtrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected miss for unknown key, got ok=%v err=%v", ok, err)
	}

	if err := c.Set(ctx, "k", []byte("preview"), 0); err != nil {
		t.Fatal(err)
	}
	data, ok, err := c.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if string(data) != "preview" {
		t.Errorf("data = %q, want preview", data)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("expected miss after delete")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("deleting a missing key should not error: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), time.Millisecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, ok, err := c.Get(ctx, "k"); err != nil || ok {
		t.Fatalf("expected expired entry to miss, got ok=%v err=%v", ok, err)
	}
}

func TestFileCacheCorruptEntryIsMiss(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}

	fc := c.(*FileCache)
	if err := os.WriteFile(fc.path("k"), []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, ok, err := c.Get(ctx, "k"); err != nil || ok {
		t.Fatalf("expected corrupt entry to miss, got ok=%v err=%v", ok, err)
	}
	// The corrupt file is cleaned up.
	if _, err := os.Stat(fc.path("k")); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed on read")
	}
}

func TestFileCacheSharding(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set(context.Background(), "k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !entries[0].IsDir() || len(entries[0].Name()) != 2 {
		t.Fatalf("expected a single two-character shard dir, got %v", entries)
	}
	if filepath.Ext(filepath.Base(c.(*FileCache).path("k"))) != ".json" {
		t.Error("entries should be stored as .json files")
	}
}

func TestNullCacheNeverHits(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := c.Get(ctx, "k"); err != nil || ok {
		t.Fatalf("null cache must always miss, got ok=%v err=%v", ok, err)
	}
}

func TestPreviewKeySensitivity(t *testing.T) {
	base := PreviewKey("fibo", 5, 120, 40, 0.5, 40)

	variants := []string{
		PreviewKey("tatami", 5, 120, 40, 0.5, 40),
		PreviewKey("fibo", 6, 120, 40, 0.5, 40),
		PreviewKey("fibo", 5, 121, 40, 0.5, 40),
		PreviewKey("fibo", 5, 120, 41, 0.5, 40),
		PreviewKey("fibo", 5, 120, 40, 0.6, 40),
		PreviewKey("fibo", 5, 120, 40, 0.5, 60),
	}
	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d should produce a different key", i)
		}
	}

	if again := PreviewKey("fibo", 5, 120, 40, 0.5, 40); again != base {
		t.Error("identical parameters must produce identical keys")
	}
}
