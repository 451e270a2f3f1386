package store

// MigrationHistory records one applied schema version.
type MigrationHistory struct {
	Version   string
	CreatedTs int64
}

type UpsertMigrationHistory struct {
	Version string
}

// FindMigrationHistory filters the history; a nil Version matches every row.
type FindMigrationHistory struct {
	Version *string
}
