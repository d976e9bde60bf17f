package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент сервиса уведомлений.
// Все уведомления fire-and-forget: ошибка доставки логируется
// на вызывающей стороне и никогда не откатывает доменную операцию.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Виды событий изменения расписания
const (
	KindScheduled     = "scheduled"
	KindStatusChanged = "status_changed"
	KindCancelled     = "cancelled"
)

// ScheduleChangeEvent уведомление об изменении расписания визита
type ScheduleChangeEvent struct {
	VisitID   int64  `json:"visitId"`
	GuideID   int64  `json:"guideId"`
	VisitDate string `json:"visitDate"`
	StartTime string `json:"startTime"`
	OldDate   string `json:"oldDate,omitempty"`
	Kind      string `json:"kind"` // KindScheduled | KindStatusChanged | KindCancelled
}

// RefundDecisionEvent уведомление о решении по возврату
type RefundDecisionEvent struct {
	RefundID int64   `json:"refundId"`
	VisitID  int64   `json:"visitId"`
	Status   string  `json:"status"`
	Amount   float64 `json:"amount"`
}

// NotifyScheduleChange отправляет уведомление об изменении расписания
func (c *Client) NotifyScheduleChange(ctx context.Context, event ScheduleChangeEvent) error {
	return c.post(ctx, "/internal/notifications/schedule-change", event)
}

// NotifyRefundDecision отправляет уведомление о решении по возврату
func (c *Client) NotifyRefundDecision(ctx context.Context, event RefundDecisionEvent) error {
	return c.post(ctx, "/internal/notifications/refund-decision", event)
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}

	return nil
}
