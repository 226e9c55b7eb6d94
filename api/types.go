// Package api holds the request and response types of the HTTP surface.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type ScreeningSummary struct {
	Id             string `json:"id"`
	Title          string `json:"title"`
	Genre          string `json:"genre"`
	Duration       string `json:"duration"`
	Rating         string `json:"rating"`
	PosterUrl      string `json:"posterUrl"`
	Rows           int    `json:"rows"`
	Cols           int    `json:"cols"`
	TotalSeats     int    `json:"totalSeats"`
	BookedSeats    int    `json:"bookedSeats"`
	AvailableSeats int    `json:"availableSeats"`
}

type ScreeningListResponse struct {
	Screenings []ScreeningSummary `json:"screenings"`
}

type Seat struct {
	Id        string `json:"id"`
	Available bool   `json:"available"`
}

type SeatRow struct {
	Row   string `json:"row"`
	Seats []Seat `json:"seats"`
}

type SeatMapResponse struct {
	ScreeningId string    `json:"screeningId"`
	Rows        int       `json:"rows"`
	Cols        int       `json:"cols"`
	SeatRows    []SeatRow `json:"seatRows"`
}

type BookingRequest struct {
	ScreeningId   string   `json:"screeningId" validate:"required"`
	Seats         []string `json:"seats" validate:"required,min=1,max=100,dive,seat_id"`
	CustomerName  string   `json:"customerName" validate:"required,max=100"`
	CustomerPhone string   `json:"customerPhone" validate:"required,max=30"`
}

type BookingResponse struct {
	TicketId    string          `json:"ticketId"`
	ScreeningId string          `json:"screeningId"`
	Seats       []string        `json:"seats"`
	Total       decimal.Decimal `json:"total"`
	Durable     bool            `json:"durable"`
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AddScreeningRequest struct {
	Id        string `json:"id" validate:"required,max=50"`
	Title     string `json:"title" validate:"required,max=200"`
	Genre     string `json:"genre" validate:"max=100"`
	Duration  string `json:"duration" validate:"max=50"`
	Rating    string `json:"rating" validate:"max=20"`
	PosterUrl string `json:"posterUrl" validate:"omitempty,url,max=500"`
	Rows      int    `json:"rows" validate:"required,min=1,max=26"`
	Cols      int    `json:"cols" validate:"required,min=1,max=100"`
}

type AdminMutationResponse struct {
	ScreeningId string `json:"screeningId"`
	Durable     bool   `json:"durable"`
}

type SeatConflictResponse struct {
	Message          string    `json:"message"`
	RequestId        string    `json:"requestId,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
	ConflictingSeats []string  `json:"conflictingSeats"`
}

type InvalidSeatResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	BadSeats  []string  `json:"badSeats"`
}
