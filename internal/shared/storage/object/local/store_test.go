package local

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestSaveOpenDeleteRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	key, size, mimeType, err := store.Save(ctx, "user-1", "resume.txt", strings.NewReader("hello resume"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if key == "" {
		t.Fatalf("expected storage key")
	}
	if size != int64(len("hello resume")) {
		t.Fatalf("unexpected size: %d", size)
	}
	if !strings.HasPrefix(mimeType, "text/plain") {
		t.Fatalf("unexpected mime type: %q", mimeType)
	}

	rc, err := store.Open(ctx, key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	_ = rc.Close()
	if string(data) != "hello resume" {
		t.Fatalf("unexpected content: %q", data)
	}

	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Open(ctx, key); err == nil {
		t.Fatalf("expected open to fail after delete")
	}
	// Deleting twice is a no-op.
	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
}

func TestSaveGeneratesDistinctKeys(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	key1, _, _, err := store.Save(ctx, "user-1", "resume.txt", strings.NewReader("first"))
	if err != nil {
		t.Fatalf("first Save: %v", err)
	}
	key2, _, _, err := store.Save(ctx, "user-1", "resume.txt", strings.NewReader("second"))
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if key1 == key2 {
		t.Fatalf("same file name produced the same key: %q", key1)
	}

	rc, err := store.Open(ctx, key1)
	if err != nil {
		t.Fatalf("Open first: %v", err)
	}
	data, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(data) != "first" {
		t.Fatalf("first object overwritten: %q", data)
	}
}

func TestOpenRejectsTraversal(t *testing.T) {
	store := New(t.TempDir())

	if _, err := store.Open(context.Background(), "../etc/passwd"); err == nil {
		t.Fatalf("expected traversal to be rejected")
	}
	if err := store.Delete(context.Background(), "/abs/path"); err == nil {
		t.Fatalf("expected absolute key to be rejected")
	}
}

func TestSaveRejectsBadFileName(t *testing.T) {
	store := New(t.TempDir())

	if _, _, _, err := store.Save(context.Background(), "user-1", "../evil.txt", strings.NewReader("x")); err == nil {
		t.Fatalf("expected traversal file name to be rejected")
	}
}
