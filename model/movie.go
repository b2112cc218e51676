package model

import "time"

const (
	MovieComingSoon = "coming_soon"
	MovieShowing    = "showing"
	MovieEnded      = "ended"
)

type Movie struct {
	DTO
	Title       string     `gorm:"not null" json:"title"`
	Slug        string     `gorm:"uniqueIndex;not null" json:"slug"`
	Description string     `gorm:"type:text" json:"description"`
	Genre       string     `json:"genre"`
	Duration    int        `gorm:"not null" json:"duration"` // minutes
	PosterUrl   string     `json:"posterUrl"`
	TrailerUrl  string     `json:"trailerUrl"`
	Language    string     `json:"language"`
	AgeRating   string     `json:"ageRating"`
	Status      string     `gorm:"size:20;not null;default:'coming_soon'" json:"status"`
	ReleaseDate *time.Time `json:"releaseDate"`
	EndDate     *time.Time `json:"endDate"`
	Screenings  []Screening `gorm:"foreignKey:MovieId" json:"screenings,omitempty"`
}

type Movies []Movie

type CreateMovieInput struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Genre       string     `json:"genre"`
	Duration    int        `json:"duration" validate:"required,min=1"`
	PosterUrl   string     `json:"posterUrl"`
	TrailerUrl  string     `json:"trailerUrl"`
	Language    string     `json:"language"`
	AgeRating   string     `json:"ageRating"`
	ReleaseDate *time.Time `json:"releaseDate"`
	EndDate     *time.Time `json:"endDate"`
}

type EditMovieInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Genre       *string    `json:"genre"`
	Duration    *int       `json:"duration" validate:"omitempty,min=1"`
	PosterUrl   *string    `json:"posterUrl"`
	TrailerUrl  *string    `json:"trailerUrl"`
	Language    *string    `json:"language"`
	AgeRating   *string    `json:"ageRating"`
	Status      *string    `json:"status" validate:"omitempty,oneof=coming_soon showing ended"`
	ReleaseDate *time.Time `json:"releaseDate"`
	EndDate     *time.Time `json:"endDate"`
}

type FilterMovie struct {
	Pagination
	SearchKey string `query:"searchKey"`
	Genre     string `query:"genre"`
	Status    string `query:"status"`
}
