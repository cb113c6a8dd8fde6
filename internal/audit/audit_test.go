package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"SceneMail/internal/models"
)

type memRecorder struct {
	entries []models.EmailLogEntry
	err     error
}

func (m *memRecorder) InsertLog(_ context.Context, e *models.EmailLogEntry) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, *e)
	return nil
}

func TestRecordPersistsEntry(t *testing.T) {
	rec := &memRecorder{}
	l := New(rec, zap.NewNop())

	l.Record(context.Background(), &models.EmailLogEntry{
		EmailTo:         "a@b.co",
		Scene:           models.SceneSignup,
		Language:        models.LangEnUS,
		Status:          models.StatusSent,
		ProviderEmailID: "prov-1",
	})

	require.Len(t, rec.entries, 1)
	assert.Equal(t, "prov-1", rec.entries[0].ProviderEmailID)
}

func TestRecordSwallowsStoreFailure(t *testing.T) {
	rec := &memRecorder{err: errors.New("log store unavailable")}
	l := New(rec, zap.NewNop())

	// Must not panic and has no error to return.
	l.Record(context.Background(), &models.EmailLogEntry{
		EmailTo: "a@b.co",
		Scene:   models.SceneWelcome,
		Status:  models.StatusFailed,
	})
	assert.Empty(t, rec.entries)
}
