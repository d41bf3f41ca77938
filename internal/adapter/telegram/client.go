package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/go-faster/errors"
)

const defaultRetryAfter = 5 * time.Second

// TooManyRequestsError represents rate limiting signal from the Bot API.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// Sender delivers text messages to the studio chat.
type Sender interface {
	Send(ctx context.Context, text string) error
}

// HTTPClient implements Sender via the Bot API sendMessage method.
type HTTPClient struct {
	baseURL    *url.URL
	token      string
	chatID     string
	httpClient *http.Client
	logger     *slog.Logger
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

// apiResponse mirrors the Bot API envelope.
type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
	Parameters  *struct {
		RetryAfter int `json:"retry_after"`
	} `json:"parameters,omitempty"`
}

// NewHTTPClient creates Bot API client with default timeout.
func NewHTTPClient(baseURL, token, chatID string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse telegram url")
	}
	if !parsed.IsAbs() {
		return nil, errors.New("telegram url must be absolute")
	}
	if token == "" || chatID == "" {
		return nil, errors.New("telegram token and chat id must be provided")
	}
	return &HTTPClient{
		baseURL: parsed,
		token:   token,
		chatID:  chatID,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Send posts an HTML formatted message to the configured chat.
func (c *HTTPClient) Send(ctx context.Context, text string) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "bot"+c.token, "sendMessage")

	payload, err := json.Marshal(sendMessageRequest{
		ChatID:                c.chatID,
		Text:                  text,
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "send telegram message")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	var data apiResponse
	decodeErr := json.Unmarshal(body, &data)

	switch resp.StatusCode {
	case http.StatusOK:
		if decodeErr != nil {
			return errors.Wrap(decodeErr, "decode telegram response")
		}
		if !data.OK {
			return errors.Errorf("telegram rejected message: %s", data.Description)
		}
		return nil
	case http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		if data.Parameters != nil && data.Parameters.RetryAfter > 0 {
			retryAfter = time.Duration(data.Parameters.RetryAfter) * time.Second
		}
		return TooManyRequestsError{RetryAfter: retryAfter}
	default:
		c.logger.Error("telegram request failed", slog.Int("status", resp.StatusCode), slog.String("description", data.Description))
		return errors.Errorf("telegram error: %s", resp.Status)
	}
}

// NopSender drops messages when the bot is not configured.
type NopSender struct {
	logger *slog.Logger
}

// NewNopSender creates NopSender.
func NewNopSender(logger *slog.Logger) *NopSender {
	return &NopSender{logger: logger}
}

// Send logs the message at debug level.
func (s *NopSender) Send(_ context.Context, text string) error {
	s.logger.Debug("telegram disabled, message skipped", slog.Int("length", len(text)))
	return nil
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return defaultRetryAfter
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return defaultRetryAfter
}
