package helper

import (
	"catering_manager/database"
	"catering_manager/model"
	"errors"

	"gorm.io/gorm"
)

func CheckByPhoneNumberCustomer(phoneNumber string, id *uint) (bool, error) {
	db := database.DB
	var count int64
	query := db.Model(&model.Customer{}).Where("phone = ?", phoneNumber)
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

func CheckByEmailCustomer(email string, id *uint) (bool, error) {
	db := database.DB
	var count int64
	query := db.Model(&model.Customer{}).Where("email = ?", email)
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
