package error_notificator

import "context"

type Notificator interface {
	// Notify — сообщает админу о сбое конвертации
	Notify(ctx context.Context, err error, details string) error
}
