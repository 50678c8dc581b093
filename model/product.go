package model

type Category struct {
	DTO
	Name        string    `gorm:"uniqueIndex;not null" validate:"required" json:"name"`
	Description *string   `json:"description"`
	Active      bool      `gorm:"default:true" json:"active"`
	Products    []Product `gorm:"foreignKey:CategoryId" json:"products,omitempty"`
}

type Product struct {
	DTO
	CategoryId  uint      `gorm:"not null" json:"categoryId"`
	Category    *Category `gorm:"foreignKey:CategoryId" json:"category,omitempty"`
	Name        string    `gorm:"not null" validate:"required" json:"name"`
	Slug        string    `gorm:"uniqueIndex" json:"slug"`
	Description *string   `json:"description"`
	Archived    bool      `gorm:"default:false" json:"archived"`
}

type Products []Product

type CreateCategoryInput struct {
	Name        string  `validate:"required" json:"name"`
	Description *string `json:"description"`
}

type CreateProductInput struct {
	CategoryId  uint    `validate:"required,gt=0" json:"categoryId"`
	Name        string  `validate:"required" json:"name"`
	Description *string `json:"description"`
}

type EditProductInput struct {
	CategoryId  *uint   `json:"categoryId"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type FilterProduct struct {
	Pagination
	SearchKey  string `json:"searchKey"`
	CategoryId *uint  `json:"categoryId"`
	Archived   *bool  `json:"archived"`
}
