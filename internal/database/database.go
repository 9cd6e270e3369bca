package database

import (
	"database/sql"

	_ "modernc.org/sqlite" // SQLite driver
)

// New creates a new database connection pool.
func New(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dataSourceName+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS products (
		id TEXT NOT NULL PRIMARY KEY,
		brand_name TEXT NOT NULL,
		energy_kcal REAL,
		protein REAL,
		carbohydrate REAL,
		added_sugars REAL,
		total_sugars REAL,
		total_fat REAL,
		saturated_fat REAL,
		trans_fat REAL,
		cholesterol_mg REAL,
		sodium_mg REAL,
		dietary_fiber REAL,
		mono_unsaturated_fatty_acids REAL,
		poly_unsaturated_fatty_acids REAL,
		category TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS blogs (
		id TEXT NOT NULL PRIMARY KEY,
		title TEXT NOT NULL,
		snippet TEXT,
		content TEXT NOT NULL,
		image_url TEXT,
		likes INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS blog_comments (
		id TEXT NOT NULL PRIMARY KEY,
		blog_id TEXT NOT NULL REFERENCES blogs(id) ON DELETE CASCADE,
		author TEXT,
		text TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := db.Exec(sqlStmt)
	return err
}
