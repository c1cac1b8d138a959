package db

import (
	"cmp"
	"fmt"
	"io/fs"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	embeddedmigrations "github.com/terraincognita07/musclemap/migrations"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var migrationFilePattern = regexp.MustCompile(`^(\d+)_[a-z0-9_]+\.sql$`)

// schemaMigration is one row of the applied migration ledger.
type schemaMigration struct {
	Version   int       `gorm:"primaryKey;autoIncrement:false"`
	Name      string    `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

type sqlMigration struct {
	Version    int
	Name       string
	Statements []string
}

func applyEmbeddedMigrations(database *gorm.DB, logger *zap.Logger) error {
	return applyMigrations(database, embeddedmigrations.Files, logger)
}

// applyMigrations runs every migration in files that the ledger has not
// recorded yet. A recorded version whose file name no longer matches is an
// error: shipped migrations are never renamed or rewritten.
func applyMigrations(database *gorm.DB, files fs.FS, logger *zap.Logger) error {
	if err := database.AutoMigrate(&schemaMigration{}); err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	migrations, err := loadMigrations(files)
	if err != nil {
		return err
	}

	var applied []schemaMigration
	if err := database.Order("version").Find(&applied).Error; err != nil {
		return fmt.Errorf("load applied migrations: %w", err)
	}
	appliedNames := make(map[int]string, len(applied))
	for _, row := range applied {
		appliedNames[row.Version] = row.Name
	}

	pending := 0
	for _, migration := range migrations {
		recorded, done := appliedNames[migration.Version]
		if done {
			if recorded != migration.Name {
				return fmt.Errorf("migration %d recorded as %s but shipped as %s", migration.Version, recorded, migration.Name)
			}
			continue
		}

		if err := runMigration(database, migration); err != nil {
			return err
		}
		pending++
		logger.Info("applied migration", zap.Int("version", migration.Version), zap.String("name", migration.Name))
	}

	logger.Debug("schema up to date", zap.Int("applied_now", pending), zap.Int("known", len(migrations)))
	return nil
}

func loadMigrations(files fs.FS) ([]sqlMigration, error) {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	migrations := make([]sqlMigration, 0, len(names))
	byVersion := make(map[int]string, len(names))
	for _, name := range names {
		matches := migrationFilePattern.FindStringSubmatch(name)
		if matches == nil {
			return nil, fmt.Errorf("migration file %s does not match NNNN_name.sql", name)
		}
		version, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, fmt.Errorf("parse migration version from %s: %w", name, err)
		}
		if other, taken := byVersion[version]; taken {
			return nil, fmt.Errorf("migrations %s and %s share version %d", other, name, version)
		}
		byVersion[version] = name

		body, err := fs.ReadFile(files, name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		statements := splitSQLStatements(string(body))
		if len(statements) == 0 {
			return nil, fmt.Errorf("migration %s has no statements", name)
		}

		migrations = append(migrations, sqlMigration{Version: version, Name: name, Statements: statements})
	}

	slices.SortFunc(migrations, func(a, b sqlMigration) int {
		return cmp.Compare(a.Version, b.Version)
	})
	return migrations, nil
}

func runMigration(database *gorm.DB, migration sqlMigration) error {
	return database.Transaction(func(tx *gorm.DB) error {
		for index, statement := range migration.Statements {
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("migration %s statement %d: %w", migration.Name, index+1, err)
			}
		}
		record := schemaMigration{
			Version:   migration.Version,
			Name:      migration.Name,
			AppliedAt: time.Now().UTC(),
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("record migration %s: %w", migration.Name, err)
		}
		return nil
	})
}

// splitSQLStatements splits on semicolons and drops blank statements and
// full-line "--" comments. Migrations must not put semicolons inside literals.
func splitSQLStatements(sqlText string) []string {
	var statements []string
	for _, part := range strings.Split(sqlText, ";") {
		lines := strings.Split(part, "\n")
		kept := lines[:0]
		for _, line := range lines {
			if strings.HasPrefix(strings.TrimSpace(line), "--") {
				continue
			}
			kept = append(kept, line)
		}
		statement := strings.TrimSpace(strings.Join(kept, "\n"))
		if statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}
