package models

// Room is static reference data, seeded from config and read-only via the API.
type Room struct {
	ID       int64  `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Capacity int64  `json:"capacity" yaml:"capacity"`
}
