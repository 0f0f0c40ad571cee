package models

import "time"

// Booking reserves a room for a half-open time range [StartTime, EndTime).
// Two bookings for the same room may touch at an endpoint but never overlap.
type Booking struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	RoomID    int64     `json:"roomId"`
	UserID    int64     `json:"userId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	CreatedAt time.Time `json:"-"`
}

// BookingDetail is a booking joined with room and owner reference data,
// the shape returned by list endpoints.
type BookingDetail struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	RoomID    int64     `json:"roomId"`
	RoomName  string    `json:"roomName"`
	UserID    int64     `json:"userId"`
	UserEmail string    `json:"userEmail"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}
