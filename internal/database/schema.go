package database

import "fmt"

// Collections lista las cuatro colecciones de registros del sistema
var Collections = []string{"customers", "vehicles", "inspections", "invoices"}

// schemaStatements define las tablas del servicio. Las referencias
// customer_id/vehicle_id/inspection_id se almacenan como texto sin
// foreign keys: son referencias débiles y el sistema tolera que
// apunten a registros inexistentes.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id UUID PRIMARY KEY,
		customer_id TEXT NOT NULL,
		vin TEXT NOT NULL,
		plate TEXT NOT NULL,
		make TEXT NOT NULL,
		model TEXT NOT NULL,
		year INT NOT NULL,
		color TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS inspections (
		id UUID PRIMARY KEY,
		customer_id TEXT NOT NULL,
		vehicle_id TEXT NOT NULL,
		checks JSONB NOT NULL,
		notes TEXT,
		photos JSONB NOT NULL DEFAULT '[]',
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id UUID PRIMARY KEY,
		inspection_id TEXT NOT NULL,
		line_items JSONB NOT NULL,
		subtotal NUMERIC(12,2) NOT NULL,
		taxes NUMERIC(12,2) NOT NULL,
		total NUMERIC(12,2) NOT NULL,
		paid BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema crea las tablas del servicio si no existen
func (db *DB) EnsureSchema() error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecWithTimeout(stmt); err != nil {
			return fmt.Errorf("error ensuring schema: %w", err)
		}
	}
	return nil
}

// ListTables retorna las tablas del esquema público presentes en la base
func (db *DB) ListTables() ([]string, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		ORDER BY table_name
	`

	rows, err := db.QueryWithTimeout(query)
	if err != nil {
		return nil, fmt.Errorf("error listing tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("error scanning table name: %w", err)
		}
		tables = append(tables, name)
	}

	return tables, nil
}
