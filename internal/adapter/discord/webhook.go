package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"leetstats/internal/domain/model"
	"leetstats/internal/domain/ports"
)

// Discord embed limits.
const (
	maxEmbeds          = 10
	maxFieldsPerEmbed  = 25
	maxTitleLen        = 256
	maxDescriptionLen  = 4096
	maxFieldNameLen    = 256
	maxFieldValueLen   = 1024
	digestColor        = 0xFFA116
	digestSenderName   = "leetstats"
	digestFooterFormat = "leetstats digest • page %d/%d"
)

type webhookMessage struct {
	Username string  `json:"username,omitempty"`
	Embeds   []embed `json:"embeds"`
}

type embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Fields      []embedField `json:"fields,omitempty"`
	Footer      *embedFooter `json:"footer,omitempty"`
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type embedFooter struct {
	Text string `json:"text"`
}

// apiError is the body Discord returns with a 4xx.
type apiError struct {
	Message    string  `json:"message"`
	Code       int     `json:"code"`
	RetryAfter float64 `json:"retry_after"`
}

// Webhook posts stats digests to a Discord channel.
type Webhook struct {
	webhookURL string
	httpClient *http.Client
	logger     ports.Logger
	now        func() time.Time
}

// NewWebhook creates a new Discord webhook notifier.
func NewWebhook(webhookURL string, timeout time.Duration, logger ports.Logger) *Webhook {
	return &Webhook{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		now:        time.Now,
	}
}

// Send posts the digest as one message. Users beyond one embed's field limit
// continue on further embeds; anything past maxEmbeds pages is dropped.
func (w *Webhook) Send(ctx context.Context, notification model.Notification) error {
	if w.webhookURL == "" {
		return fmt.Errorf("webhook URL is empty")
	}

	msg := buildMessage(notification, w.now())
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp)
	}

	w.logger.Info(ctx, "digest sent to discord", "fields", len(notification.Fields), "embeds", len(msg.Embeds))
	return nil
}

func buildMessage(notification model.Notification, now time.Time) webhookMessage {
	pages := chunkFields(notification.Fields)
	if len(pages) > maxEmbeds {
		pages = pages[:maxEmbeds]
	}

	embeds := make([]embed, 0, len(pages))
	for i, fields := range pages {
		e := embed{
			Color:  digestColor,
			Fields: fields,
			Footer: &embedFooter{Text: fmt.Sprintf(digestFooterFormat, i+1, len(pages))},
		}
		if i == 0 {
			e.Title = truncate(notification.Title, maxTitleLen)
			e.Description = truncate(notification.Description, maxDescriptionLen)
		}
		if i == len(pages)-1 {
			e.Timestamp = now.UTC().Format(time.RFC3339)
		}
		embeds = append(embeds, e)
	}
	return webhookMessage{Username: digestSenderName, Embeds: embeds}
}

// chunkFields always returns at least one page so the title is sent.
func chunkFields(fields []model.NotificationField) [][]embedField {
	pages := [][]embedField{nil}
	for _, field := range fields {
		last := len(pages) - 1
		if len(pages[last]) == maxFieldsPerEmbed {
			pages = append(pages, nil)
			last++
		}
		pages[last] = append(pages[last], embedField{
			Name:   truncate(field.Name, maxFieldNameLen),
			Value:  truncate(field.Value, maxFieldValueLen),
			Inline: field.Inline,
		})
	}
	return pages
}

func statusError(resp *http.Response) error {
	var body apiError
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	if err := json.Unmarshal(data, &body); err != nil || body.Message == "" {
		return fmt.Errorf("discord webhook returned status %d", resp.StatusCode)
	}
	if body.RetryAfter > 0 {
		return fmt.Errorf("discord webhook returned status %d: %s (retry after %.1fs)", resp.StatusCode, body.Message, body.RetryAfter)
	}
	return fmt.Errorf("discord webhook returned status %d: %s", resp.StatusCode, body.Message)
}

// truncate cuts value to at most limit bytes without splitting a rune.
func truncate(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	cut := limit - len("...")
	for cut > 0 && !utf8.RuneStart(value[cut]) {
		cut--
	}
	return strings.TrimSpace(value[:cut]) + "..."
}
