package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/Xunop/e-verse/internal/log"
	"github.com/Xunop/e-verse/internal/store"
	"github.com/Xunop/e-verse/internal/version"
)

type DB struct {
	*sql.DB
	path string
}

// NewDB opens the sqlite database at path. ":memory:" is accepted.
func NewDB(path string) (*DB, error) {
	if path == "" {
		return nil, errors.New("Database URL is required")
	}

	dsn := path
	if path != ":memory:" && !strings.Contains(path, "?") {
		dsn = path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}
	d, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// One connection keeps writes serialised and makes ":memory:" a single database.
	d.SetMaxOpenConns(1)

	return &DB{d, path}, nil
}

func (d *DB) Close() error {
	return d.DB.Close()
}

//go:embed migration
var migrationFS embed.FS

const latestSchemaFileName = "LATEST_SCHEMA.sql"

// Migrate brings the schema up to the current version.
func (d *DB) Migrate(ctx context.Context) error {
	currentVersion := version.GetCurrentVersion()

	exist, err := d.CheckTableExists(ctx, "migration_history")
	if err != nil {
		return errors.Wrap(err, "failed to check database table")
	}
	if !exist {
		// Fresh database, create it with latest schema
		if err := d.applyLatestSchema(ctx); err != nil {
			return errors.Wrap(err, "failed to apply latest schema")
		}
		// Upsert the newest version to migration_history.
		if _, err := d.UpsertMigrationHistory(ctx, &store.UpsertMigrationHistory{
			Version: version.GetSchemaVersion(currentVersion),
		}); err != nil {
			return errors.Wrap(err, "failed to upsert migration history")
		}
		return nil
	}

	latestMigrationHistoryVersion, err := d.LatestAppliedVersion(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to find migration history list")
	}
	if latestMigrationHistoryVersion == "" {
		// History table without rows, the schema file only creates missing tables
		if err := d.applyLatestSchema(ctx); err != nil {
			return errors.Wrap(err, "failed to apply latest schema")
		}
		_, err = d.UpsertMigrationHistory(ctx, &store.UpsertMigrationHistory{
			Version: version.GetSchemaVersion(currentVersion),
		})
		return errors.Wrap(err, "failed to upsert migration history")
	}

	if !version.IsVersionGreaterThan(version.GetSchemaVersion(currentVersion), latestMigrationHistoryVersion) {
		return nil
	}

	backupDBFilePath, err := d.backup()
	if err != nil {
		return err
	}
	log.Info("Start migration",
		zap.String("from", latestMigrationHistoryVersion),
		zap.String("to", currentVersion))
	for _, minorVersion := range getMinorVersionList() {
		// Since the patch don't need to update sql
		normalizedVersion := minorVersion + ".0"
		if version.IsVersionGreaterThan(normalizedVersion, latestMigrationHistoryVersion) && version.IsVersionGreaterOrEqualThan(currentVersion, normalizedVersion) {
			log.Info("Applying migration", zap.String("version", normalizedVersion))
			if err := d.applyMigrationForMinorVersion(ctx, minorVersion); err != nil {
				return errors.Wrap(err, "failed to apply minor version migration")
			}
		}
	}

	// Remove the created backup db file after migrate succeed.
	if backupDBFilePath != "" {
		if err := os.Remove(backupDBFilePath); err != nil {
			log.Warn("Failed to remove backup database file", zap.String("path", backupDBFilePath), zap.Error(err))
		}
	}
	return nil
}

// backup copies the database file next to itself before a migration. It is a
// no-op for in-memory databases.
func (d *DB) backup() (string, error) {
	if d.path == ":memory:" {
		return "", nil
	}
	rawBytes, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", errors.Wrap(err, "failed to read raw database file")
	}
	backupDBFilePath := fmt.Sprintf("%s_%s_%d_backup.db", strings.TrimSuffix(d.path, ".db"), version.GetCurrentVersion(), time.Now().Unix())
	if err := os.WriteFile(backupDBFilePath, rawBytes, 0644); err != nil {
		return "", errors.Wrap(err, "failed to write backup database file")
	}
	log.Debug("Backup database file", zap.String("path", backupDBFilePath))
	return backupDBFilePath, nil
}

func (d *DB) applyLatestSchema(ctx context.Context) error {
	latestSchemaPath := fmt.Sprintf("migration/%s", latestSchemaFileName)
	buf, err := migrationFS.ReadFile(latestSchemaPath)
	if err != nil {
		return errors.Wrapf(err, "failed to read latest schema file: %q", latestSchemaPath)
	}

	stmt := string(buf)
	if err := d.execute(ctx, stmt); err != nil {
		return errors.Wrapf(err, "failed to apply latest schema: %s", stmt)
	}
	return nil
}

func (d *DB) applyMigrationForMinorVersion(ctx context.Context, minorVersion string) error {
	filenames, err := fs.Glob(migrationFS, fmt.Sprintf("migration/%s/*.sql", minorVersion))
	if err != nil {
		return errors.Wrapf(err, "Failed to find migration files for version %s", minorVersion)
	}

	// The filename files are sorted by name, so that they are applied in order.
	// 10001_example.sql, 10002_example.sql, 10003_example.sql, ...
	sort.Strings(filenames)

	for _, filename := range filenames {
		buf, err := migrationFS.ReadFile(filename)
		if err != nil {
			return errors.Wrapf(err, "Failed to read migration file: %q", filename)
		}
		stmt := string(buf)
		if err := d.execute(ctx, stmt); err != nil {
			return errors.Wrapf(err, "Failed to apply migration: %s", stmt)
		}
	}

	// Upsert the newest version to migration_history.
	version := minorVersion + ".0"
	if _, err := d.UpsertMigrationHistory(ctx, &store.UpsertMigrationHistory{
		Version: version,
	}); err != nil {
		return errors.Wrapf(err, "Failed to upsert migration history for version %s", version)
	}

	return nil
}

// execute runs a single SQL statement within a transaction.
func (d *DB) execute(ctx context.Context, stmt string) error {
	tx, err := d.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, stmt); err != nil {
		return errors.Wrap(err, "failed to execute statement")
	}

	return tx.Commit()
}

// minorDirRegexp is a regular expression for minor version directory.
var minorDirRegexp = regexp.MustCompile(`^migration/[0-9]+\.[0-9]+$`)

func getMinorVersionList() []string {
	minorVersionList := []string{}

	if err := fs.WalkDir(migrationFS, "migration", func(path string, file fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if file.IsDir() && minorDirRegexp.MatchString(path) {
			minorVersionList = append(minorVersionList, file.Name())
		}

		return nil
	}); err != nil {
		panic(err)
	}

	sort.Sort(version.SortVersion(minorVersionList))

	return minorVersionList
}
