package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vovarama1992/voice_converter/internal/converter"
	"github.com/Vovarama1992/voice_converter/internal/voice"
)

type limitSpy struct {
	Repo
	limit int
}

func (l *limitSpy) ListRecent(ctx context.Context, limit int) ([]Record, error) {
	l.limit = limit
	return nil, nil
}

type failingRepo struct{ Repo }

func (failingRepo) Create(context.Context, Record) (int64, error) {
	return 0, errors.New("db down")
}

func TestService_RecordSuccessAndFailure(t *testing.T) {
	svc := NewService(NewMemoryRepo(0))
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	ctx := context.Background()

	_, err := svc.Record(ctx, "req-1", "sess-1", converter.Outcome{
		Kind:          converter.OutcomeSuccess,
		Request:       converter.Request{Text: "She wrote the report", Direction: voice.ActiveToPassive},
		Target:        converter.SlotPassive,
		ConvertedText: "The report was written by her",
	})
	require.NoError(t, err)

	_, err = svc.Record(ctx, "req-2", "", converter.Outcome{
		Kind:    converter.OutcomeFailure,
		Request: converter.Request{Text: "The letter was sent by John", Direction: voice.PassiveToActive},
		Target:  converter.SlotActive,
		Reason:  "status 500",
	})
	require.NoError(t, err)

	recs, err := svc.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "req-2", recs[0].RequestID)
	assert.False(t, recs[0].Succeeded)
	assert.Equal(t, converter.ErrorText, recs[0].ResultText)
	assert.Equal(t, "status 500", recs[0].Reason)
	assert.Equal(t, "passive_to_active", recs[0].Direction)

	assert.Equal(t, "req-1", recs[1].RequestID)
	assert.True(t, recs[1].Succeeded)
	assert.Equal(t, "The report was written by her", recs[1].ResultText)
	assert.Equal(t, fixed, recs[1].CreatedAt)
}

func TestService_SkippedNotRecorded(t *testing.T) {
	repo := NewMemoryRepo(0)
	svc := NewService(repo)

	id, err := svc.Record(context.Background(), "req", "", converter.Outcome{Kind: converter.OutcomeSkipped})
	require.NoError(t, err)
	assert.Zero(t, id)

	recs, _ := repo.ListRecent(context.Background(), 10)
	assert.Empty(t, recs)
}

func TestService_RecordError(t *testing.T) {
	svc := NewService(failingRepo{})
	_, err := svc.Record(context.Background(), "req", "", converter.Outcome{Kind: converter.OutcomeSuccess})
	assert.ErrorContains(t, err, "db down")
}

func TestService_RecentClampsLimit(t *testing.T) {
	spy := &limitSpy{}
	svc := NewService(spy)

	tests := []struct{ in, want int }{
		{0, defaultLimit},
		{-5, defaultLimit},
		{7, 7},
		{1000, maxLimit},
	}
	for _, tt := range tests {
		_, err := svc.Recent(context.Background(), tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, spy.limit)
	}
}

func TestMemoryRepo_KeepsLastMax(t *testing.T) {
	repo := NewMemoryRepo(2)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, err := repo.Create(ctx, Record{RequestID: id})
		require.NoError(t, err)
	}

	recs, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "c", recs[0].RequestID)
	assert.Equal(t, int64(3), recs[0].ID)
	assert.Equal(t, "b", recs[1].RequestID)
}
