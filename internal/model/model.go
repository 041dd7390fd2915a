package model

import "time"

type User struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedOn    time.Time `json:"createdOn"`
}

type Story struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Story            string    `json:"story"`
	VisitedLocations []string  `json:"visitedLocation"`
	IsFavorite       bool      `json:"isFavorite"`
	UserID           int64     `json:"userId"`
	CreatedOn        time.Time `json:"createdOn"`
	ImageURL         string    `json:"imageUrl"`
	VisitedDate      time.Time `json:"visitedDate"`
}
