package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/sellerdesk/internal/platform/httpclient"
)

// Requester performs JSON round trips against the registry.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Requester{client: client, logger: logger}
}

// Do sends in (JSON encoded, when non-nil) to path and decodes the reply
// into out when out is non-nil. Any status other than want is translated
// with TranslateHTTPError.
func (r *Requester) Do(ctx context.Context, method, path string, want int, in, out any) error {
	body := io.Reader(http.NoBody)
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.client.BaseURL()+path, body)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer func() {
			if cerr := resp.Body.Close(); cerr != nil {
				r.logger.WarnContext(ctx, "closing registry response", slog.Any("error", cerr))
			}
		}()
	}

	switch {
	case resp != nil && resp.StatusCode != want:
		// Covers retries that ran out on a 5xx as well as plain failures.
		r.logger.ErrorContext(ctx, "registry rejected request",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", want),
		)
		return TranslateHTTPError(resp)
	case err != nil:
		r.logger.ErrorContext(ctx, "registry request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	case out == nil:
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s: %w", method, path, err)
	}
	return nil
}
