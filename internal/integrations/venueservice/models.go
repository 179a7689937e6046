package venueservice

import "time"

// Venue модель площадки из API бэкенда
type Venue struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	SportCategory  string  `json:"sport_category"`
	Description    string  `json:"description"`
	Address        string  `json:"address"`
	PricePerHour   float64 `json:"price_per_hour"`
	OpeningTime    string  `json:"opening_time"`
	ClosingTime    string  `json:"closing_time"`
	LunchStartTime *string `json:"lunch_start_time,omitempty"`
	LunchEndTime   *string `json:"lunch_end_time,omitempty"`
	Timezone       string  `json:"timezone,omitempty"` // IANA, например "Asia/Kolkata"
}

// BookedSlot занятый интервал (бронь или блокировка) в UTC
type BookedSlot struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status,omitempty"`
	Kind      string    `json:"kind,omitempty"`
}

// CreateBookingRequest тело запроса POST /bookings и POST /bookings/block
type CreateBookingRequest struct {
	VenueID   int64  `json:"venue_id"`
	StartTime string `json:"start_time"` // ISO-8601 UTC
	EndTime   string `json:"end_time"`
}

// BookingResult ответ бэкенда на создание бронирования
type BookingResult struct {
	ID int64 `json:"id"`
}

// ErrorResponse модель ошибки от бэкенда
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
