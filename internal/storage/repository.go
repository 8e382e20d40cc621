package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"warsha/internal/core"
	"warsha/internal/store"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var schemaFS embed.FS

// SQLiteRepository persists the store in a SQLite database. The data scale
// is a single shop's ledger, so Save simply rewrites all five tables in
// one transaction rather than diffing rows.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := migrateSchema(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// migrateSchema brings the database file up to the embedded schema. It
// opens its own connection because the migrate driver takes ownership of
// the handle it is given and closes it.
func migrateSchema(dbPath string) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open for migration: %w", err)
	}

	drv, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		db.Close()
		return fmt.Errorf("migration driver: %w", err)
	}
	src, err := iofs.New(schemaFS, "migrations")
	if err != nil {
		db.Close()
		return fmt.Errorf("load embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", drv)
	if err != nil {
		db.Close()
		return fmt.Errorf("prepare migration: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Load reads all five collections into a fresh store.
func (r *SQLiteRepository) Load(ctx context.Context) (*store.Store, error) {
	s := store.New()

	rows, err := r.db.QueryContext(ctx, `SELECT id, name, phone FROM clients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query clients: %w", err)
	}
	for rows.Next() {
		var c core.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan client: %w", err)
		}
		s.Clients = append(s.Clients, c)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	rows, err = r.db.QueryContext(ctx, `SELECT id, client_id, plate, model FROM cars ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query cars: %w", err)
	}
	for rows.Next() {
		var c core.Car
		if err := rows.Scan(&c.ID, &c.ClientID, &c.Plate, &c.Model); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan car: %w", err)
		}
		s.Cars = append(s.Cars, c)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	rows, err = r.db.QueryContext(ctx, `SELECT id, car_id, date, type, notes FROM maintenance ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query maintenance: %w", err)
	}
	for rows.Next() {
		var m core.Maintenance
		var date string
		if err := rows.Scan(&m.ID, &m.CarID, &date, &m.Type, &m.Notes); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan maintenance: %w", err)
		}
		m.Date = parseStoredDate(date)
		s.Maintenance = append(s.Maintenance, m)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	rows, err = r.db.QueryContext(ctx, `SELECT id, client_id, car_id, amount_cents, date, description FROM revenue ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query revenue: %w", err)
	}
	for rows.Next() {
		var rec core.Revenue
		var date string
		if err := rows.Scan(&rec.ID, &rec.ClientID, &rec.CarID, &rec.Amount.Cents, &date, &rec.Desc); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan revenue: %w", err)
		}
		rec.Date = parseStoredDate(date)
		s.Revenue = append(s.Revenue, rec)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	rows, err = r.db.QueryContext(ctx, `SELECT id, amount_cents, date, type, notes FROM expenses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	for rows.Next() {
		var e core.Expense
		var date string
		if err := rows.Scan(&e.ID, &e.Amount.Cents, &date, &e.Type, &e.Notes); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.Date = parseStoredDate(date)
		s.Expenses = append(s.Expenses, e)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	return s, nil
}

// Save rewrites the whole store inside one transaction.
func (r *SQLiteRepository) Save(ctx context.Context, s *store.Store) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"expenses", "revenue", "maintenance", "cars", "clients"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, c := range s.Clients {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO clients (id, name, phone) VALUES (?, ?, ?)`,
			c.ID, c.Name, c.Phone); err != nil {
			return fmt.Errorf("insert client %d: %w", c.ID, err)
		}
	}
	for _, c := range s.Cars {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO cars (id, client_id, plate, model) VALUES (?, ?, ?, ?)`,
			c.ID, c.ClientID, c.Plate, c.Model); err != nil {
			return fmt.Errorf("insert car %d: %w", c.ID, err)
		}
	}
	for _, m := range s.Maintenance {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO maintenance (id, car_id, date, type, notes) VALUES (?, ?, ?, ?, ?)`,
			m.ID, m.CarID, m.Date.String(), m.Type, m.Notes); err != nil {
			return fmt.Errorf("insert maintenance %d: %w", m.ID, err)
		}
	}
	for _, rec := range s.Revenue {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO revenue (id, client_id, car_id, amount_cents, date, description) VALUES (?, ?, ?, ?, ?, ?)`,
			rec.ID, rec.ClientID, rec.CarID, rec.Amount.Cents, rec.Date.String(), rec.Desc); err != nil {
			return fmt.Errorf("insert revenue %d: %w", rec.ID, err)
		}
	}
	for _, e := range s.Expenses {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO expenses (id, amount_cents, date, type, notes) VALUES (?, ?, ?, ?, ?)`,
			e.ID, e.Amount.Cents, e.Date.String(), e.Type, e.Notes); err != nil {
			return fmt.Errorf("insert expense %d: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

func parseStoredDate(s string) core.Date {
	d, err := core.ParseDate(s)
	if err != nil {
		return core.Date{}
	}
	return d
}

func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("iterate rows: %w", err)
	}
	return rows.Close()
}
