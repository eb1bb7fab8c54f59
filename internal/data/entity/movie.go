package entity

import (
	"time"
)

type Movie struct {
	Base
	Title            string     `db:"title"`
	Description      string     `db:"description"`
	ShortDescription string     `db:"short_description"`
	Genre            string     `db:"genre"`
	Duration         int        `db:"duration"` // minutes
	ReleaseDate      *time.Time `db:"release_date"`
	Language         string     `db:"language"`
	Country          string     `db:"country"`
	Director         string     `db:"director"`
	Cast             string     `db:"cast"`
	Writers          string     `db:"writers"`
	PosterURL        *string    `db:"poster_url"`
}
