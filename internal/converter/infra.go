package converter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// HTTPService ходит во внешний сервис конвертации:
// POST {"text","direction"} → {"converted_text": "..."}
type HTTPService struct {
	endpoint string
	client   *http.Client
}

func NewHTTPService(endpoint string, timeout time.Duration) *HTTPService {
	return &HTTPService{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type convertResponse struct {
	ConvertedText *string `json:"converted_text"`
}

func (s *HTTPService) Convert(ctx context.Context, in Request) (string, error) {
	b, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %s", ErrTransport, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return "", fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}

	var out convertResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if out.ConvertedText == nil {
		return "", fmt.Errorf("%w: converted_text missing", ErrMalformedResponse)
	}

	return *out.ConvertedText, nil
}
