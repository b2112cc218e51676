package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"
)

func GetMovies(c *fiber.Ctx) error {
	db := database.DB

	var filter model.FilterMovie
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := db.Model(&model.Movie{})
	if filter.SearchKey != "" {
		query = query.Where("title ILIKE ?", "%"+filter.SearchKey+"%")
	}
	if filter.Genre != "" {
		query = query.Where("genre = ?", filter.Genre)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var movies model.Movies
	query = utils.ApplyPagination(query, filter.Limit, filter.Page)
	if err := query.Order("release_date DESC NULLS LAST, id DESC").Find(&movies).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       movies,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetMovieBySlug(c *fiber.Ctx) error {
	db := database.DB
	slug := c.Params("slug")

	var movie model.Movie
	if err := db.Where("slug = ?", slug).
		Preload("Screenings", "start_time > NOW()").
		Preload("Screenings.Hall").
		First(&movie).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

func CreateMovie(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("CreateMovie").(model.CreateMovieInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	var movie model.Movie
	if err := copier.Copy(&movie, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	movie.Status = model.MovieComingSoon

	tx := db.Begin()
	movie.Slug = helper.GenerateUniqueMovieSlug(tx, movie.Title)
	if err := tx.Create(&movie).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusCreated, movie)
}

func EditMovie(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("EditMovie").(model.EditMovieInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}
	movieId, ok := c.Locals("inputMovieId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	var movie model.Movie
	if err := db.First(&movie, movieId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	tx := db.Begin()
	if input.Title != nil && *input.Title != movie.Title {
		movie.Title = *input.Title
		movie.Slug = helper.GenerateUniqueMovieSlug(tx, movie.Title)
	}
	if input.Description != nil {
		movie.Description = *input.Description
	}
	if input.Genre != nil {
		movie.Genre = *input.Genre
	}
	if input.Duration != nil {
		movie.Duration = *input.Duration
	}
	if input.PosterUrl != nil {
		if movie.PosterUrl != "" && movie.PosterUrl != *input.PosterUrl {
			helper.DestroyPosterAsset(movie.PosterUrl)
		}
		movie.PosterUrl = *input.PosterUrl
	}
	if input.TrailerUrl != nil {
		movie.TrailerUrl = *input.TrailerUrl
	}
	if input.Language != nil {
		movie.Language = *input.Language
	}
	if input.AgeRating != nil {
		movie.AgeRating = *input.AgeRating
	}
	if input.Status != nil {
		movie.Status = *input.Status
	}
	if input.ReleaseDate != nil {
		movie.ReleaseDate = input.ReleaseDate
	}
	if input.EndDate != nil {
		movie.EndDate = input.EndDate
	}

	if err := tx.Save(&movie).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

func DeleteMovies(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, errors.New("parse locals fail"))
	}

	// Movies with scheduled screenings cannot be removed.
	var screeningCount int64
	if err := db.Model(&model.Screening{}).Where("movie_id IN ?", input.IDs).Count(&screeningCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if screeningCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Ֆիլմն ունի պլանավորված սեանսներ", errors.New("movie has screenings"))
	}

	var movies model.Movies
	if err := db.Find(&movies, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Delete(&model.Movie{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	for _, movie := range movies {
		if movie.PosterUrl != "" {
			helper.DestroyPosterAsset(movie.PosterUrl)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}

// GetPosterUploadSignature returns a signed Cloudinary direct-upload payload.
func GetPosterUploadSignature(c *fiber.Ctx) error {
	payload, err := helper.GeneratePosterUploadSignature("movie_posters")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, payload)
}
