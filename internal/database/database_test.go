package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) *Database {
	t.Helper()

	db, err := New(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return db
}

func TestNewCreatesSchema(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	if err := db.Ping(context.Background()); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}

	var name string
	err := db.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='metadata'").Scan(&name)
	if err != nil {
		t.Fatalf("metadata table missing: %v", err)
	}
	if db.Path() == "" {
		t.Error("Path() is empty")
	}
}

func TestNewMissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), filepath.Join(t.TempDir(), "missing", "test.db"))
	if err == nil {
		t.Fatal("expected an error for a missing parent directory")
	}
}

func TestReopenKeepsData(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := New(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	if err := db.SetMetadata(ctx, "k", "v"); err != nil {
		t.Fatal(err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	db, err = New(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	got, err := db.GetMetadata(ctx, "k")
	if err != nil || got != "v" {
		t.Errorf("GetMetadata() = %q, %v after reopen", got, err)
	}
}

func TestMetadata(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()

	if _, err := db.GetMetadata(ctx, "absent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetMetadata(absent) error = %v, want ErrNotFound", err)
	}

	if err := db.SetMetadata(ctx, "key", "one"); err != nil {
		t.Fatal(err)
	}
	if err := db.SetMetadata(ctx, "key", "two"); err != nil {
		t.Fatal(err)
	}
	got, err := db.GetMetadata(ctx, "key")
	if err != nil || got != "two" {
		t.Errorf("GetMetadata() = %q, %v; want upserted value", got, err)
	}

	if err := db.DeleteMetadata(ctx, "key"); err != nil {
		t.Fatal(err)
	}
	if _, err := db.GetMetadata(ctx, "key"); !errors.Is(err, ErrNotFound) {
		t.Errorf("after delete error = %v, want ErrNotFound", err)
	}
	if err := db.DeleteMetadata(ctx, "key"); err != nil {
		t.Errorf("deleting a missing key error = %v", err)
	}
}

func TestUpdateDBMetrics(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	db.UpdateDBMetrics()
}
