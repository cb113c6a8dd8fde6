package db

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"SceneMail/internal/models"
)

// ErrTemplateNotFound means no enabled row matches (scene, language).
var ErrTemplateNotFound = errors.New("email template not found")

type Store struct {
	Pool *pgxpool.Pool
}

// New opens a pgx pool and pings it, retrying with exponential backoff so
// the service survives a database that comes up a few seconds late.
func New(ctx context.Context, conn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, conn)
	if err != nil {
		return nil, err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxElapsedTime = 30 * time.Second

	ping := func() error {
		return pool.Ping(ctx)
	}

	if err := backoff.Retry(ping, backoff.WithContext(b, ctx)); err != nil {
		pool.Close()
		return nil, err
	}

	return &Store{Pool: pool}, nil
}

func (s *Store) Close() {
	s.Pool.Close()
}

// GetTemplate resolves the enabled template for (scene, language).
func (s *Store) GetTemplate(
	ctx context.Context,
	scene models.Scene,
	lang models.Language,
) (*models.EmailTemplate, error) {

	var t models.EmailTemplate

	err := s.Pool.QueryRow(ctx,
		`SELECT id, scene, language, subject, enabled
		 FROM email_templates
		 WHERE scene=$1 AND language=$2 AND enabled=true`,
		scene,
		lang,
	).Scan(&t.ID, &t.Scene, &t.Language, &t.Subject, &t.Enabled)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// InsertLog writes one audit row for an attempted send.
func (s *Store) InsertLog(ctx context.Context, e *models.EmailLogEntry) error {

	return s.Pool.QueryRow(ctx,
		`INSERT INTO email_logs
		 (email_to, scene, language, status, error_message, provider_email_id, created_at)
		 VALUES ($1,$2,$3,$4,NULLIF($5,''),NULLIF($6,''),NOW())
		 RETURNING id, created_at`,
		e.EmailTo,
		e.Scene,
		e.Language,
		e.Status,
		e.ErrorMessage,
		e.ProviderEmailID,
	).Scan(&e.ID, &e.CreatedAt)
}
