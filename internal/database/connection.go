package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hypernova-labs/garage-service/internal/config"
	_ "github.com/lib/pq"
)

// DB representa la conexión a la base de datos
type DB struct {
	*sql.DB
}

// Connect establece la conexión a PostgreSQL
func Connect(cfg *config.Config) (*DB, error) {
	dsn := cfg.GetDSN()

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Configurar pool de conexiones
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	// Verificar conexión
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return &DB{db}, nil
}

// Close cierra la conexión a la base de datos
func (db *DB) Close() error {
	return db.DB.Close()
}

// HealthCheck verifica la salud de la base de datos
func (db *DB) HealthCheck() error {
	if err := db.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.QueryContext(ctx, "SELECT 1"); err != nil {
		return fmt.Errorf("database query test failed: %w", err)
	}

	return nil
}

// GetStats retorna estadísticas del pool de conexiones
func (db *DB) GetStats() map[string]interface{} {
	stats := make(map[string]interface{})

	stats["max_open_connections"] = db.Stats().MaxOpenConnections
	stats["open_connections"] = db.Stats().OpenConnections
	stats["in_use"] = db.Stats().InUse
	stats["idle"] = db.Stats().Idle
	stats["wait_count"] = db.Stats().WaitCount

	return stats
}

// ExecWithTimeout ejecuta una query con timeout
func (db *DB) ExecWithTimeout(query string, args ...interface{}) (sql.Result, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return db.ExecContext(ctx, query, args...)
}

// QueryWithTimeout ejecuta una query de lectura con timeout
func (db *DB) QueryWithTimeout(query string, args ...interface{}) (*sql.Rows, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return db.QueryContext(ctx, query, args...)
}

// QueryRowWithTimeout ejecuta una query de una fila con timeout
func (db *DB) QueryRowWithTimeout(query string, args ...interface{}) *sql.Row {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return db.QueryRowContext(ctx, query, args...)
}
