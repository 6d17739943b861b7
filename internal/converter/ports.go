package converter

import (
	"context"
	"errors"

	"github.com/Vovarama1992/voice_converter/internal/voice"
)

// ErrorText — то, что видит пользователь в целевом поле при любой ошибке
const ErrorText = "Error converting text. Please try again."

var (
	ErrTransport         = errors.New("conversion transport error")
	ErrMalformedResponse = errors.New("malformed conversion response")
)

type Request struct {
	Text      string          `json:"text"`
	Direction voice.Direction `json:"direction"`
}

// Service — внешний сервис, который реально переписывает предложение
type Service interface {
	Convert(ctx context.Context, req Request) (string, error)
}

// TargetSlot — куда пишется результат: всегда поле, противоположное направлению
func TargetSlot(d voice.Direction) Slot {
	if d == voice.ActiveToPassive {
		return SlotPassive
	}
	return SlotActive
}
