package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

const memoryPath = ":memory:"

// InitDB opens the tournament database and migrates it to the latest schema.
// A local SQLite file is used unless primaryUrl points at a remote libsql
// primary. The returned teardown closes the pool.
func InitDB(dbPath string, primaryUrl string, authToken string, migrationsDir string) (*sql.DB, func(), error) {
	var (
		db  *sql.DB
		err error
	)
	if primaryUrl == "" {
		log.Info("Initializing local-only SQLite database", "path", dbPath)
		db, err = openLocal(dbPath)
	} else {
		log.Info("Initializing Turso database", "url", primaryUrl)
		db, err = openRemote(primaryUrl, authToken)
	}
	if err != nil {
		return nil, nil, err
	}

	if err = migrate(db, migrationsDir); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	teardown := func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}
	log.Info("Database initialized successfully")
	return db, teardown, nil
}

func openLocal(dbPath string) (*sql.DB, error) {
	// Foreign key support is off by default in SQLite and the pragma is per
	// connection, so it goes in the DSN to apply to every pooled connection.
	dsn := "file:" + dbPath + "?_foreign_keys=on&_busy_timeout=5000"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open local database: %w", err)
	}
	if isMemory(dbPath) {
		// Every connection to :memory: gets its own empty database.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to local database: %w", err)
	}
	return db, nil
}

func openRemote(primaryUrl, authToken string) (*sql.DB, error) {
	db, err := sql.Open("libsql", primaryUrl+"?authToken="+authToken)
	if err != nil {
		return nil, fmt.Errorf("failed to open db %s: %w", primaryUrl, err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		log.Error("Error enabling foreign keys", "error", err)
		db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(db *sql.DB, migrationsDir string) error {
	goose.SetLogger(log.Default())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return err
	}
	version, err := goose.GetDBVersion(db)
	if err != nil {
		return err
	}
	log.Debug("Database schema is up to date", "version", version)
	return nil
}

func isMemory(dbPath string) bool {
	return dbPath == memoryPath || strings.Contains(dbPath, "mode=memory")
}
