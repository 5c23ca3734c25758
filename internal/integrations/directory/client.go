package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент справочника персонала, клиентов и услуг
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает клиент справочника
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetStaff получает мастера по ID
func (c *Client) GetStaff(ctx context.Context, staffID int64) (*Staff, error) {
	var staff Staff
	url := fmt.Sprintf("%s/internal/staff/%d", c.baseURL, staffID)
	if err := c.getJSON(ctx, url, ErrStaffNotFound, &staff); err != nil {
		return nil, err
	}
	return &staff, nil
}

// GetCustomer получает клиента по ID
func (c *Client) GetCustomer(ctx context.Context, customerID int64) (*Customer, error) {
	var customer Customer
	url := fmt.Sprintf("%s/internal/customers/%d", c.baseURL, customerID)
	if err := c.getJSON(ctx, url, ErrCustomerNotFound, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetService получает услугу по ID
// Длительность услуги определяет время окончания бронирования
func (c *Client) GetService(ctx context.Context, serviceID int64) (*Service, error) {
	var service Service
	url := fmt.Sprintf("%s/internal/services/%d", c.baseURL, serviceID)
	if err := c.getJSON(ctx, url, ErrServiceNotFound, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (c *Client) getJSON(ctx context.Context, url string, notFound error, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
