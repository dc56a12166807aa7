package mongo

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies pending index migrations from sourcePath.
// An up-to-date database is not an error.
func RunMigrations(sourcePath, uri, dbName string) error {
	m, err := migrate.New(
		fmt.Sprintf("file://%s", sourcePath),
		fmt.Sprintf("%s/%s", uri, dbName),
	)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
