package db

import (
	"context"
	"database/sql"
	"sort"

	"github.com/Xunop/e-verse/internal/store"
	"github.com/Xunop/e-verse/internal/version"
	"github.com/pkg/errors"
)

// UpsertMigrationHistory stamps a schema version as applied.
func (d *DB) UpsertMigrationHistory(ctx context.Context, upsert *store.UpsertMigrationHistory) (*store.MigrationHistory, error) {
	row := d.DB.QueryRowContext(ctx, `
		INSERT INTO migration_history (version) VALUES (?)
		ON CONFLICT(version) DO UPDATE SET version = EXCLUDED.version
		RETURNING version, created_ts`, upsert.Version)

	h := &store.MigrationHistory{}
	if err := row.Scan(&h.Version, &h.CreatedTs); err != nil {
		return nil, errors.Wrapf(err, "failed to record schema version %s", upsert.Version)
	}
	return h, nil
}

func (d *DB) FindMigrationHistoryList(ctx context.Context, find *store.FindMigrationHistory) ([]*store.MigrationHistory, error) {
	query := "SELECT version, created_ts FROM migration_history"
	args := []interface{}{}
	if find != nil && find.Version != nil {
		query += " WHERE version = ?"
		args = append(args, *find.Version)
	}
	rows, err := d.DB.QueryContext(ctx, query+" ORDER BY created_ts DESC", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*store.MigrationHistory{}
	for rows.Next() {
		h := &store.MigrationHistory{}
		if err := rows.Scan(&h.Version, &h.CreatedTs); err != nil {
			return nil, err
		}
		list = append(list, h)
	}
	return list, rows.Err()
}

// LatestAppliedVersion is the highest recorded schema version, "" when none is.
func (d *DB) LatestAppliedVersion(ctx context.Context) (string, error) {
	list, err := d.FindMigrationHistoryList(ctx, &store.FindMigrationHistory{})
	if err != nil {
		return "", err
	}
	if len(list) == 0 {
		return "", nil
	}
	versions := make([]string, 0, len(list))
	for _, h := range list {
		versions = append(versions, h.Version)
	}
	sort.Sort(version.SortVersion(versions))
	return versions[len(versions)-1], nil
}

func (d *DB) CheckTableExists(ctx context.Context, table string) (bool, error) {
	var name string
	err := d.DB.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
