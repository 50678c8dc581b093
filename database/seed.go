package database

import (
	"catering_manager/constants"
	"catering_manager/model"
	"catering_manager/utils"
	"log"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123456"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	accounts := []model.Account{
		{Username: "administrator", Password: hashPassword, Active: true, Role: constants.ROLE_ADMIN},
	}
	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Username, "error:", err)
		}
	}

	// Pricing coefficients live in a single row; create with defaults only
	// when missing so admin updates survive restarts.
	var pricing model.PricingSettings
	if err := db.FirstOrCreate(&pricing, model.PricingSettings{}).Error; err != nil {
		log.Println("failed to seed pricing settings:", err)
	}

	categories := map[string][]string{
		"Main Dish": {"Roast Beef", "Chicken Pastel", "Pork Hamonado", "Beef Caldereta"},
		"Pasta":     {"Spaghetti", "Carbonara", "Baked Macaroni"},
		"Vegetable": {"Chopsuey", "Buttered Vegetables", "Lumpiang Sariwa"},
		"Dessert":   {"Leche Flan", "Buko Pandan", "Fruit Salad"},
		"Drinks":    {"Iced Tea", "Four Seasons", "Cucumber Lemonade"},
	}

	descriptions := map[string]string{
		"Main Dish": "Centerpiece dishes served per head",
		"Pasta":     "Party tray pasta, one choice per package",
		"Vegetable": "Seasonal vegetable sides",
		"Dessert":   "Classic Filipino desserts",
		"Drinks":    "Bottomless drink stations",
	}

	for categoryName, products := range categories {
		category := model.Category{
			Name:        categoryName,
			Description: utils.StringPtr(descriptions[categoryName]),
			Active:      true,
		}
		if err := db.Where(model.Category{Name: categoryName}).FirstOrCreate(&category).Error; err != nil {
			log.Println("failed to seed category:", categoryName, "error:", err)
			continue
		}
		for _, productName := range products {
			product := model.Product{
				CategoryId: category.ID,
				Name:       productName,
				Slug:       slug.Make(productName),
			}
			if err := db.Where(model.Product{Slug: product.Slug}).FirstOrCreate(&product).Error; err != nil {
				log.Println("failed to seed product:", productName, "error:", err)
			}
		}
	}
}
