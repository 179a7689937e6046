package venueservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/slotengine"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// Client клиент для работы с API бэкенда бронирований площадок
type Client struct {
	baseURL         string
	httpClient      *http.Client
	defaultLocation *time.Location
	metrics         Metrics
	log             Logger
}

// NewClient создает новый экземпляр клиента
// defaultLocation используется для площадок, у которых бэкенд не вернул часовой пояс
func NewClient(baseURL string, timeout time.Duration, defaultLocation *time.Location, log Logger) *Client {
	if defaultLocation == nil {
		defaultLocation = time.UTC
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		defaultLocation: defaultLocation,
		log:             log,
	}
}

// WithMetrics включает запись длительности вызовов бэкенда
func (c *Client) WithMetrics(m Metrics) *Client {
	c.metrics = m
	return c
}

// GetVenue получает площадку с часами работы
func (c *Client) GetVenue(ctx context.Context, venueID int64) (*domain.Venue, error) {
	endpoint := fmt.Sprintf("%s/api/v1/venues/%d", c.baseURL, venueID)

	resp, err := c.do(ctx, "get_venue", http.MethodGet, endpoint, "", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrVenueNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var venue Venue
	if err := json.NewDecoder(resp.Body).Decode(&venue); err != nil {
		return nil, fmt.Errorf("%w: failed to decode venue: %v", ErrInvalidResponse, err)
	}

	return c.toDomainVenue(&venue)
}

// GetBookedSlots получает занятые интервалы площадки на дату
// Отмененные брони пропускаются; пустой ответ (null) - пустой список
func (c *Client) GetBookedSlots(ctx context.Context, venueID int64, date time.Time) ([]domain.BookedInterval, error) {
	query := url.Values{}
	query.Set("date", date.Format(domain.DateFormat))
	endpoint := fmt.Sprintf("%s/api/v1/venues/%d/slots?%s", c.baseURL, venueID, query.Encode())

	resp, err := c.do(ctx, "get_booked_slots", http.MethodGet, endpoint, "", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrVenueNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var slots []BookedSlot
	if err := json.NewDecoder(resp.Body).Decode(&slots); err != nil {
		return nil, fmt.Errorf("%w: failed to decode booked slots: %v", ErrInvalidResponse, err)
	}

	intervals := make([]domain.BookedInterval, 0, len(slots))
	for _, s := range slots {
		if isCancelled(s.Status) {
			continue
		}

		interval := domain.BookedInterval{Start: s.StartTime, End: s.EndTime, Kind: domain.IntervalBooking}
		if s.Kind == string(domain.IntervalBlock) {
			interval.Kind = domain.IntervalBlock
		}
		if !interval.IsValid() {
			c.log.Warn("Skipping empty booked interval for venue_id=%d: %s - %s", venueID, s.StartTime, s.EndTime)
			continue
		}
		intervals = append(intervals, interval)
	}

	return intervals, nil
}

// CreateBooking создает бронирование [start, end) от имени пользователя
// При отказе бэкенда возвращает *RejectedError с сообщением бэкенда
func (c *Client) CreateBooking(ctx context.Context, token string, venueID int64, start, end time.Time) (*BookingResult, error) {
	return c.createReservation(ctx, "create_booking", "/api/v1/bookings", token, venueID, start, end)
}

// CreateBlock создает блокировку интервала владельцем площадки
func (c *Client) CreateBlock(ctx context.Context, token string, venueID int64, start, end time.Time) (*BookingResult, error) {
	return c.createReservation(ctx, "create_block", "/api/v1/bookings/block", token, venueID, start, end)
}

func (c *Client) createReservation(
	ctx context.Context,
	op string,
	path string,
	token string,
	venueID int64,
	start, end time.Time,
) (*BookingResult, error) {
	payload, err := json.Marshal(CreateBookingRequest{
		VenueID:   venueID,
		StartTime: start.UTC().Format(time.RFC3339),
		EndTime:   end.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	resp, err := c.do(ctx, op, http.MethodPost, c.baseURL+path, token, payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, &RejectedError{StatusCode: resp.StatusCode, Message: rejectionMessage(body)}
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result BookingResult
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &result); err != nil {
			return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}
	}

	return &result, nil
}

func (c *Client) do(ctx context.Context, op, method, endpoint, token string, payload []byte) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(op, "error", started)
		c.log.Warn("VenueService %s %s failed after %s: %v", method, endpoint, time.Since(started), err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}

	c.observe(op, strconv.Itoa(resp.StatusCode), started)
	return resp, nil
}

func (c *Client) observe(op, result string, started time.Time) {
	if c.metrics != nil {
		c.metrics.RecordBackendRequest(op, result, time.Since(started))
	}
}

func (c *Client) toDomainVenue(v *Venue) (*domain.Venue, error) {
	opening, err := types.NewTimeStringFromString(v.OpeningTime)
	if err != nil {
		return nil, fmt.Errorf("%w: opening_time: %v", ErrInvalidResponse, err)
	}
	closing, err := types.NewTimeStringFromString(v.ClosingTime)
	if err != nil {
		return nil, fmt.Errorf("%w: closing_time: %v", ErrInvalidResponse, err)
	}

	hours := domain.OperatingHours{Opening: opening, Closing: closing}

	if v.LunchStartTime != nil && v.LunchEndTime != nil && *v.LunchStartTime != "" && *v.LunchEndTime != "" {
		lunchStart, err := types.NewTimeStringFromString(*v.LunchStartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: lunch_start_time: %v", ErrInvalidResponse, err)
		}
		lunchEnd, err := types.NewTimeStringFromString(*v.LunchEndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: lunch_end_time: %v", ErrInvalidResponse, err)
		}
		hours.LunchStart = &lunchStart
		hours.LunchEnd = &lunchEnd
	}

	if err := slotengine.ValidateHours(hours); err != nil {
		return nil, fmt.Errorf("%w: venue_id=%d: %v", ErrInvalidResponse, v.ID, err)
	}

	location := c.defaultLocation
	if v.Timezone != "" {
		loc, err := time.LoadLocation(v.Timezone)
		if err != nil {
			c.log.Warn("Unknown timezone %q for venue_id=%d, using %s", v.Timezone, v.ID, c.defaultLocation)
		} else {
			location = loc
		}
	}

	return &domain.Venue{
		ID:            v.ID,
		Name:          v.Name,
		SportCategory: v.SportCategory,
		Description:   v.Description,
		Address:       v.Address,
		PricePerHour:  v.PricePerHour,
		Hours:         hours,
		Location:      location,
	}, nil
}

func rejectionMessage(body []byte) string {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Error != "" {
			return domain.TruncateMessage(errResp.Error)
		}
		if errResp.Message != "" {
			return domain.TruncateMessage(errResp.Message)
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" && !strings.HasPrefix(text, "{") {
		return domain.TruncateMessage(text)
	}
	return defaultRejectionMessage
}

func isCancelled(status string) bool {
	return strings.EqualFold(status, "canceled") || strings.EqualFold(status, "cancelled")
}

// IsRejected извлекает сообщение бэкенда из ошибки отказа
func IsRejected(err error) (string, bool) {
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return rejected.Message, true
	}
	return "", false
}
