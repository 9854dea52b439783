package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// Postgres keeps the document as a single row in the documents table.
// Relational it is not: one key, one blob, upserted whole on every save.
type Postgres struct {
	db       *dbpg.DB
	key      string
	strategy retry.Strategy
}

func NewPostgres(db *dbpg.DB, key string) *Postgres {
	return &Postgres{
		db:  db,
		key: key,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (p *Postgres) Load(ctx context.Context) ([]byte, error) {
	query := `SELECT data FROM documents WHERE key = $1`

	row, err := p.db.QueryRowWithRetry(ctx, p.strategy, query, p.key)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}

	var data []byte
	if err = row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan document: %w", err)
	}

	return data, nil
}

func (p *Postgres) Save(ctx context.Context, data []byte) error {
	query := `INSERT INTO documents (key, data, updated_at)
			  VALUES ($1, $2, now())
			  ON CONFLICT (key) DO UPDATE
			  SET data = EXCLUDED.data, updated_at = now()`

	if _, err := p.db.ExecWithRetry(ctx, p.strategy, query, p.key, data); err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}

	return nil
}

func (p *Postgres) Close() error {
	return p.db.Master.Close()
}
