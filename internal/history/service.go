package history

import (
	"context"
	"fmt"
	"time"

	"github.com/Vovarama1992/voice_converter/internal/converter"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type Service struct {
	repo Repo
	now  func() time.Time
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Record сохраняет завершившуюся конвертацию; пропущенные не пишутся
func (s *Service) Record(ctx context.Context, requestID, sessionID string, out converter.Outcome) (int64, error) {
	if out.Kind == converter.OutcomeSkipped {
		return 0, nil
	}

	id, err := s.repo.Create(ctx, Record{
		RequestID:  requestID,
		SessionID:  sessionID,
		Direction:  string(out.Request.Direction),
		SourceText: out.Request.Text,
		ResultText: out.SlotText(),
		Succeeded:  out.Kind == converter.OutcomeSuccess,
		Reason:     out.Reason,
		CreatedAt:  s.now(),
	})
	if err != nil {
		return 0, fmt.Errorf("save conversion record: %w", err)
	}
	return id, nil
}

func (s *Service) Recent(ctx context.Context, limit int) ([]Record, error) {
	switch {
	case limit <= 0:
		limit = defaultLimit
	case limit > maxLimit:
		limit = maxLimit
	}
	return s.repo.ListRecent(ctx, limit)
}
