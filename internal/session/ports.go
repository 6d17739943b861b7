package session

import (
	"errors"
	"time"

	"github.com/Vovarama1992/voice_converter/internal/converter"
)

var (
	ErrNotFound = errors.New("session not found")
	ErrBusy     = errors.New("conversion already in progress")
)

type Snapshot struct {
	ID         string          `json:"id"`
	State      converter.State `json:"state"`
	HasContent bool            `json:"has_content"`
	Loading    bool            `json:"loading"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
