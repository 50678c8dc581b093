package database

import (
	"catering_manager/config"
	"catering_manager/model"
	"fmt"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	DB.AutoMigrate(
		&model.Account{},
		&model.Staff{},
		&model.Customer{},
		&model.PasswordResetToken{},
		&model.Category{},
		&model.Product{},
		&model.PricingSettings{},
		&model.Reservation{},
		&model.ReservationSelection{},
		&model.ReservationAddOn{},
		&model.BookedDate{},
		&model.Payment{},
		&model.Feedback{},
	)

	// Sequential numbers are handed out by the database so two concurrent
	// creations can never draw the same one.
	DB.Exec("CREATE SEQUENCE IF NOT EXISTS reservation_no_seq START 1")
	DB.Exec("CREATE SEQUENCE IF NOT EXISTS payment_no_seq START 1")

	fmt.Println("Database Migrated")

	SeedData(DB)
}
