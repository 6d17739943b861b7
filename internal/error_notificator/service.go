package error_notificator

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vovarama1992/voice_converter/internal/converter"
)

type Service struct {
	infra Notificator
}

func NewService(infra Notificator) *Service {
	return &Service{infra: infra}
}

func (s *Service) Notify(ctx context.Context, err error, details string) error {
	return s.infra.Notify(ctx, err, details)
}

// NotifyOutcome — шлёт уведомление только по неудачным конвертациям
func (s *Service) NotifyOutcome(ctx context.Context, requestID string, out converter.Outcome) error {
	if out.Kind != converter.OutcomeFailure {
		return nil
	}
	details := fmt.Sprintf("request: %s\nнаправление: %s\nтекст: %s",
		requestID, out.Request.Direction, out.Request.Text)
	return s.infra.Notify(ctx, errors.New(out.Reason), details)
}
