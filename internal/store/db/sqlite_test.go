package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Xunop/e-verse/internal/store"
	"github.com/Xunop/e-verse/internal/version"
)

func TestMigrateFreshDatabase(t *testing.T) {
	ctx := context.Background()
	d, err := NewDB(filepath.Join(t.TempDir(), "fresh.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	if err := d.Migrate(ctx); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	list, err := d.FindMigrationHistoryList(ctx, &store.FindMigrationHistory{})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Version != version.GetSchemaVersion(version.GetCurrentVersion()) {
		t.Fatalf("unexpected migration history %+v", list)
	}

	// A second run is a no-op.
	if err := d.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}

	s := store.NewStore(d.DB, 16)
	if err := s.Set("k", "a value long enough to be compressed"); err != nil {
		t.Fatal(err)
	}
}

func TestMigrateFromOlderSchema(t *testing.T) {
	ctx := context.Background()
	d, err := NewDB(filepath.Join(t.TempDir(), "old.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	if err := d.applyMigrationForMinorVersion(ctx, "0.1"); err != nil {
		t.Fatalf("apply 0.1: %v", err)
	}
	if _, err := d.ExecContext(ctx, `INSERT INTO kv_entry (key, value) VALUES ('font_size', '18')`); err != nil {
		t.Fatal(err)
	}

	if err := d.Migrate(ctx); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	var encoding string
	if err := d.QueryRowContext(ctx, `SELECT encoding FROM kv_entry WHERE key = 'font_size'`).Scan(&encoding); err != nil {
		t.Fatalf("encoding column missing after migration: %v", err)
	}
	if encoding != "plain" {
		t.Errorf("encoding = %q, want plain", encoding)
	}

	s := store.NewStore(d.DB, 0)
	if v, ok := s.Get("font_size"); !ok || v != "18" {
		t.Errorf("old entry unreadable after migration: %q %v", v, ok)
	}
}

func TestCheckTableExists(t *testing.T) {
	ctx := context.Background()
	d, err := NewDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	exist, err := d.CheckTableExists(ctx, "kv_entry")
	if err != nil || exist {
		t.Fatalf("kv_entry should not exist yet: %v %v", exist, err)
	}
	if err := d.Migrate(ctx); err != nil {
		t.Fatal(err)
	}
	exist, err = d.CheckTableExists(ctx, "kv_entry")
	if err != nil || !exist {
		t.Fatalf("kv_entry should exist: %v %v", exist, err)
	}
}

func TestGetMinorVersionList(t *testing.T) {
	list := getMinorVersionList()
	if len(list) < 2 || list[0] != "0.1" || list[1] != "0.2" {
		t.Fatalf("unexpected minor versions %v", list)
	}
}

func TestLatestAppliedVersion(t *testing.T) {
	ctx := context.Background()
	d, err := NewDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	if err := d.applyMigrationForMinorVersion(ctx, "0.1"); err != nil {
		t.Fatal(err)
	}
	for _, v := range []string{"0.10.0", "0.2.0"} {
		if _, err := d.UpsertMigrationHistory(ctx, &store.UpsertMigrationHistory{Version: v}); err != nil {
			t.Fatal(err)
		}
	}
	latest, err := d.LatestAppliedVersion(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if latest != "0.10.0" {
		t.Errorf("latest = %s, want 0.10.0", latest)
	}

	v := "0.2.0"
	list, err := d.FindMigrationHistoryList(ctx, &store.FindMigrationHistory{Version: &v})
	if err != nil || len(list) != 1 || list[0].Version != v {
		t.Errorf("filtered = %+v, %v", list, err)
	}
}
