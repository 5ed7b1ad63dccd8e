package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"portfolio-dashboard/internal/portfolio"
)

// Store persists the holdings seed. Live prices are not written back; price
// history stays out of scope.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	if path == "" {
		path = "data/portfolio.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=3000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pragma busy_timeout: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS holdings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			sector TEXT NOT NULL,
			purchase_price REAL NOT NULL,
			qty INTEGER NOT NULL,
			investment REAL NOT NULL,
			symbol TEXT NOT NULL,
			cmp REAL NOT NULL DEFAULT 0,
			present_value REAL NOT NULL DEFAULT 0,
			created_at TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_holdings_sector ON holdings(sector);`,
		`CREATE INDEX IF NOT EXISTS idx_holdings_symbol ON holdings(symbol);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// SeedIfEmpty inserts the default holdings on a fresh database and is a no-op
// once any holding exists.
func (s *Store) SeedIfEmpty(holdings []portfolio.Holding) error {
	if s == nil || s.db == nil {
		return nil
	}
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM holdings`).Scan(&count); err != nil {
		return fmt.Errorf("count holdings: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	now := time.Now().Format(time.RFC3339)
	for _, h := range holdings {
		_, err := tx.Exec(
			`INSERT INTO holdings (name, sector, purchase_price, qty, investment, symbol, cmp, present_value, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			h.Name, h.Sector, h.PurchasePrice, h.Qty, h.Investment, h.Symbol, h.CMP, h.PresentValue, now,
		)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert holding %s: %w", h.Symbol, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}

// LoadHoldings returns all holdings in insert order.
func (s *Store) LoadHoldings() ([]portfolio.Holding, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("store not open")
	}
	rows, err := s.db.Query(
		`SELECT id, name, sector, purchase_price, qty, investment, symbol, cmp, present_value
		 FROM holdings ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query holdings: %w", err)
	}
	defer rows.Close()

	out := make([]portfolio.Holding, 0)
	for rows.Next() {
		var h portfolio.Holding
		if err := rows.Scan(&h.ID, &h.Name, &h.Sector, &h.PurchasePrice, &h.Qty, &h.Investment, &h.Symbol, &h.CMP, &h.PresentValue); err != nil {
			return nil, fmt.Errorf("scan holding: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate holdings: %w", err)
	}
	return out, nil
}
