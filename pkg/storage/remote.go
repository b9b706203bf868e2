package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lifeos/lifeos/internal/utils"
	log "github.com/sirupsen/logrus"
)

// RemoteStore is the per-user remote mirror: one record per authenticated
// user, upsert-by-id, last write wins. It is best effort and never a source
// of truth for conflict resolution. Load reports found=false for "no record
// yet", which is an expected outcome distinct from a transport failure.
type RemoteStore interface {
	Load(ctx context.Context, userUid string) (doc []byte, found bool, err error)
	Save(ctx context.Context, userUid string, doc []byte) error
}

// PostgresStore keeps one row per user in the app_data table.
type PostgresStore struct {
	db    *sql.DB
	clock utils.Clock
}

func NewPostgresStore(db *sql.DB, clock utils.Clock) *PostgresStore {
	return &PostgresStore{db: db, clock: clock}
}

func (s *PostgresStore) Load(ctx context.Context, userUid string) ([]byte, bool, error) {
	var doc []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM app_data WHERE id = $1`, userUid).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debugf("no remote record for user %s", userUid)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not load remote record: %w", err)
	}
	return doc, true, nil
}

func (s *PostgresStore) Save(ctx context.Context, userUid string, doc []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO app_data (id, data, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		userUid, string(doc), s.clock.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("could not upsert remote record: %w", err)
	}
	return nil
}
