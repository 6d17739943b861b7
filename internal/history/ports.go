package history

import (
	"context"
	"time"
)

type Record struct {
	ID         int64     `json:"id"`
	RequestID  string    `json:"request_id"`
	SessionID  string    `json:"session_id,omitempty"`
	Direction  string    `json:"direction"`
	SourceText string    `json:"source_text"`
	ResultText string    `json:"result_text"`
	Succeeded  bool      `json:"succeeded"`
	Reason     string    `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type Repo interface {
	Create(ctx context.Context, rec Record) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]Record, error)
}
