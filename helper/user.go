package helper

import (
	"errors"

	"gorm.io/gorm"

	"cinema_booking/database"
	"cinema_booking/model"
)

func CheckByPhoneUser(phone string, id *uint) (bool, error) {
	db := database.DB
	var count int64
	query := db.Model(&model.User{}).Where("phone = ?", NormalizePhone(phone))
	if id != nil {
		query = query.Where("id != ?", *id)
	}
	if err := query.Count(&count).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return count > 0, nil
}

func CheckByEmailUser(email string, id *uint) (bool, error) {
	db := database.DB
	var count int64
	query := db.Model(&model.User{}).Where("email = ?", email)
	if id != nil {
		query = query.Where("id != ?", *id)
	}
	if err := query.Count(&count).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return count > 0, nil
}
