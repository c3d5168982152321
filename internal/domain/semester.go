package domain

import "time"

type Semester struct {
	Name           string    `json:"name"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	GigRequirement int       `json:"gig_requirement"`
	Current        bool      `json:"current"`
}

type Uniform struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Color       *string `json:"color"`
	Description *string `json:"description"`
}
