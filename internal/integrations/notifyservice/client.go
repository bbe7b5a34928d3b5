package notifyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger is the logging surface required by the client
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// BookingConfirmation is the payload for a post-booking confirmation message
type BookingConfirmation struct {
	BookingID   int64  `json:"bookingId"`
	ServiceName string `json:"serviceName"`
	Date        string `json:"date"` // YYYY-MM-DD
	TimeLabel   string `json:"timeLabel"`
}

// Client is the HTTP client for the notification dispatcher
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a notification client with the given base URL and timeout
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendBookingConfirmation asks the dispatcher to notify the customer about
// a created booking. Failures here must never invalidate the booking; the
// caller is expected to log and move on.
func (c *Client) SendBookingConfirmation(ctx context.Context, confirmation BookingConfirmation) error {
	endpoint := fmt.Sprintf("%s/internal/notifications/booking-confirmation", c.baseURL)

	body, err := json.Marshal(confirmation)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	return nil
}
