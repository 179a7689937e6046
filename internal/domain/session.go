package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// SessionState состояние попытки бронирования
// idle -> date_selected -> time_selected -> submitting -> {confirmed | rejected}
type SessionState string

const (
	SessionIdle         SessionState = "idle"
	SessionDateSelected SessionState = "date_selected"
	SessionTimeSelected SessionState = "time_selected"
	SessionSubmitting   SessionState = "submitting"
	SessionConfirmed    SessionState = "confirmed"
	SessionRejected     SessionState = "rejected"
)

// BookingSession состояние выбора слота одним пользователем на одной площадке
type BookingSession struct {
	ID           string
	Venue        Venue
	SelectedDate time.Time         // Дата по календарю площадки (полночь)
	SelectedTime *types.TimeString // nil = время не выбрано
	State        SessionState

	// Generation увеличивается при каждой смене даты
	// Результат отправки, пришедший после смены выбора, считается устаревшим
	Generation      int64
	SubmissionToken string // Токен текущей отправки, пустой если отправки нет

	LastMessage string // Последнее сообщение бэкенда (ошибка бронирования)
	BookingID   *int64 // ID подтвержденного бронирования

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone возвращает копию сессии, не разделяющую указатели на изменяемые поля
func (s *BookingSession) Clone() *BookingSession {
	c := *s
	if s.SelectedTime != nil {
		t := *s.SelectedTime
		c.SelectedTime = &t
	}
	if s.BookingID != nil {
		id := *s.BookingID
		c.BookingID = &id
	}
	return &c
}

// IsSubmitting возвращает true, если отправка в процессе
func (s *BookingSession) IsSubmitting() bool {
	return s.State == SessionSubmitting
}

// SelectDate выбирает дату и всегда сбрасывает выбранное время
func (s *BookingSession) SelectDate(date time.Time) {
	s.SelectedDate = StartOfDay(date)
	s.SelectedTime = nil
	s.Generation++
	s.SubmissionToken = ""
	s.LastMessage = ""
	s.State = SessionDateSelected
}

// SelectTime выбирает время слота (проверка доступности - на стороне вызывающего)
func (s *BookingSession) SelectTime(t types.TimeString) {
	s.SelectedTime = &t
	s.LastMessage = ""
	s.State = SessionTimeSelected
}

// BeginSubmission переводит сессию в submitting с токеном отправки
func (s *BookingSession) BeginSubmission(token string) {
	s.SubmissionToken = token
	s.State = SessionSubmitting
}

// IsCurrentSubmission проверяет, что результат относится к текущей отправке
func (s *BookingSession) IsCurrentSubmission(token string) bool {
	return s.State == SessionSubmitting && s.SubmissionToken == token
}

// Confirm фиксирует успешное бронирование
func (s *BookingSession) Confirm(bookingID int64) {
	s.BookingID = &bookingID
	s.SubmissionToken = ""
	s.LastMessage = ""
	s.State = SessionConfirmed
}

// Reject фиксирует отказ бэкенда: выбор сбрасывается, пользователь выбирает заново
func (s *BookingSession) Reject(message string) {
	s.SelectedTime = nil
	s.SubmissionToken = ""
	s.LastMessage = message
	s.State = SessionRejected
}

// AbortSubmission возвращает сессию к выбранному времени после сетевой ошибки
func (s *BookingSession) AbortSubmission(message string) {
	s.SubmissionToken = ""
	s.LastMessage = message
	if s.SelectedTime != nil {
		s.State = SessionTimeSelected
	} else {
		s.State = SessionDateSelected
	}
}

// LoginRedirect путь для перенаправления неавторизованного пользователя на вход
func LoginRedirect(venueID int64) string {
	return fmt.Sprintf("/login?redirect=/venues/%d", venueID)
}

// PaymentPath путь к оплате подтвержденного бронирования
func PaymentPath(bookingID int64) string {
	return fmt.Sprintf("/bookings/%d/pay", bookingID)
}
