package helper

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"cinema_booking/database"
	"cinema_booking/model"
)

var movieScheduler gocron.Scheduler

// AutoUpdateMovieStatus promotes coming_soon movies whose release date has
// arrived and retires showing movies past their end date.
func AutoUpdateMovieStatus() {
	log.Println("[CRON] AutoUpdateMovieStatus triggered")

	db := database.DB
	loc := time.FixedZone("AMT", 4*3600)
	today := time.Now().In(loc).Truncate(24 * time.Hour)

	var movies []model.Movie
	if err := db.Find(&movies).Error; err != nil {
		log.Printf("movie status scan: %v", err)
		return
	}

	for _, movie := range movies {
		updated := false

		if movie.ReleaseDate != nil && movie.Status == model.MovieComingSoon {
			releaseDate := movie.ReleaseDate.In(loc).Truncate(24 * time.Hour)
			if today.Equal(releaseDate) || today.After(releaseDate) {
				movie.Status = model.MovieShowing
				updated = true
			}
		}

		if movie.EndDate != nil && movie.Status == model.MovieShowing {
			endDate := movie.EndDate.In(loc).Truncate(24 * time.Hour)
			if today.After(endDate) {
				movie.Status = model.MovieEnded
				updated = true
			}
		}

		if updated {
			if err := db.Save(&movie).Error; err != nil {
				log.Printf("movie status update '%s': %v", movie.Title, err)
			} else {
				log.Printf("movie '%s' → %s", movie.Title, movie.Status)
			}
		}
	}
}

func StartMovieStatusScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("AMT", 4*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	movieScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(AutoUpdateMovieStatus),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("movie status scheduler started (00:05 AMT)")
}
