package store

import (
	"context"
	"database/sql"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"nse-breadth/internal/errors"
	"nse-breadth/internal/models"
)

const dateLayout = "2006-01-02"

// SQLiteStore implements HistoryStore using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	mu      sync.Mutex
	maxDays int
}

// NewSQLiteStore opens (or creates) the history database at dbPath and
// keeps at most maxDays records.
func NewSQLiteStore(dbPath string, maxDays int) (*SQLiteStore, error) {
	if maxDays < 1 {
		return nil, errors.NewStoreError("open", "history cap must be at least 1 day", nil)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, errors.NewStoreError("open", "failed to open database", err)
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db, maxDays: maxDays}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, errors.NewStoreError("open", "failed to initialize schema", err)
	}
	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS breadth_history (
		date TEXT PRIMARY KEY,
		score REAL NOT NULL,
		regime TEXT NOT NULL,
		vix REAL,
		participation REAL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_breadth_history_date ON breadth_history(date);
	`
	_, err := s.db.Exec(schema)
	return err
}

// AppendOrReplace upserts the day's record and prunes beyond the cap.
func (s *SQLiteStore) AppendOrReplace(ctx context.Context, rec models.HistoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewStoreError("append", "begin transaction", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO breadth_history (date, score, regime, vix, participation)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			score = excluded.score,
			regime = excluded.regime,
			vix = excluded.vix,
			participation = excluded.participation`,
		rec.Date.Format(dateLayout), rec.Score, rec.Regime,
		nullable(rec.VIX), nullable(rec.Participation))
	if err != nil {
		return errors.NewStoreError("append", "upsert record", err)
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM breadth_history WHERE date NOT IN (
			SELECT date FROM breadth_history ORDER BY date DESC LIMIT ?
		)`, s.maxDays)
	if err != nil {
		return errors.NewStoreError("append", "prune history", err)
	}

	if err := tx.Commit(); err != nil {
		return errors.NewStoreError("append", "commit", err)
	}
	return nil
}

// Load returns all records ordered by date, oldest first.
func (s *SQLiteStore) Load(ctx context.Context) ([]models.HistoryRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT date, score, regime, vix, participation
		FROM breadth_history ORDER BY date ASC`)
	if err != nil {
		return nil, errors.NewStoreError("load", "query history", err)
	}
	defer rows.Close()

	var recs []models.HistoryRecord
	for rows.Next() {
		var (
			dateStr       string
			rec           models.HistoryRecord
			vix           sql.NullFloat64
			participation sql.NullFloat64
		)
		if err := rows.Scan(&dateStr, &rec.Score, &rec.Regime, &vix, &participation); err != nil {
			return nil, errors.NewStoreError("load", "scan row", err)
		}
		rec.Date, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, errors.NewStoreError("load", "parse date "+dateStr, err)
		}
		if vix.Valid {
			v := vix.Float64
			rec.VIX = &v
		}
		if participation.Valid {
			p := participation.Float64
			rec.Participation = &p
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStoreError("load", "iterate rows", err)
	}
	return recs, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func nullable(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
