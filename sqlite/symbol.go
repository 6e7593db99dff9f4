package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/symdex"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ symdex.CatalogWriter = (*SymbolService)(nil)
	_ symdex.SymbolFinder  = (*SymbolService)(nil)
)

// SymbolService mirrors manifests into SQLite and searches them.
type SymbolService struct {
	db *DB
}

// NewSymbolService creates a new SymbolService.
func NewSymbolService(db *DB) *SymbolService {
	return &SymbolService{db: db}
}

// ReplaceCatalog discards the stored run and stores m as the new one.
func (s *SymbolService) ReplaceCatalog(ctx context.Context, m *symdex.Manifest) error {
	if err := m.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM runs`); err != nil {
		return err
	}

	runID := uuid.New().String()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, source, total, generated_at)
		VALUES (?, ?, ?, ?)
	`, runID, m.Source, m.Total, m.GeneratedAt.UTC().Format(time.RFC3339Nano)); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO symbols (run_id, position, slug, label, label_lower, x, y, preview)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, sym := range m.Symbols {
		if _, err := stmt.ExecContext(ctx, runID, i, sym.Slug, sym.Label, strings.ToLower(sym.Label),
			sym.Transform.X, sym.Transform.Y, sym.Preview); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindManifest rebuilds the stored manifest.
// Returns ENOTFOUND if no catalog has been stored.
func (s *SymbolService) FindManifest(ctx context.Context) (*symdex.Manifest, error) {
	var m symdex.Manifest
	var generatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT source, total, generated_at FROM runs LIMIT 1
	`).Scan(&m.Source, &m.Total, &generatedAt)
	if err == sql.ErrNoRows {
		return nil, symdex.Errorf(symdex.ENOTFOUND, "catalog is empty")
	}
	if err != nil {
		return nil, err
	}

	if m.GeneratedAt, err = parseRFC3339(generatedAt, "generated_at"); err != nil {
		return nil, err
	}
	if m.Symbols, err = s.findSymbols(ctx, nil); err != nil {
		return nil, err
	}
	return &m, nil
}

// FindSymbols returns stored symbols whose labels contain every filter term.
// Returns ENOTFOUND if no catalog has been stored.
func (s *SymbolService) FindSymbols(ctx context.Context, filter *symdex.SymbolFilter) ([]*symdex.Symbol, error) {
	var runs int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&runs); err != nil {
		return nil, err
	}
	if runs == 0 {
		return nil, symdex.Errorf(symdex.ENOTFOUND, "catalog is empty")
	}
	return s.findSymbols(ctx, filter)
}

func (s *SymbolService) findSymbols(ctx context.Context, filter *symdex.SymbolFilter) ([]*symdex.Symbol, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT slug, label, x, y, preview FROM symbols WHERE 1=1")
	if filter != nil {
		for _, term := range filter.Terms {
			query.WriteString(" AND instr(label_lower, ?) > 0")
			args = append(args, strings.ToLower(term))
		}
	}
	query.WriteString(" ORDER BY position ASC")

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	symbols := []*symdex.Symbol{}
	for rows.Next() {
		var slug, label, preview string
		var origin symdex.Point
		if err := rows.Scan(&slug, &label, &origin.X, &origin.Y, &preview); err != nil {
			return nil, err
		}
		sym := symdex.NewSymbol(label, origin)
		sym.Slug = slug
		sym.Preview = preview
		symbols = append(symbols, sym)
	}
	return symbols, rows.Err()
}
