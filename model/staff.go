package model

type Staff struct {
	DTO
	AccountId uint     `gorm:"not null" json:"accountId"`
	Account   *Account `gorm:"foreignKey:AccountId" json:"-"`
	FullName  string   `gorm:"not null" validate:"required" json:"fullName"`
	Phone     string   `json:"phone"`
	Position  string   `json:"position"`
	IsActive  bool     `gorm:"default:true" json:"isActive"`
}

type Staffs []Staff

type CreateStaffInput struct {
	Username string `validate:"required,min=3,max=50" json:"username"`
	Password string `validate:"required,min=6,max=50" json:"password"`
	FullName string `validate:"required" json:"fullName"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
}

type EditStaffInput struct {
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
	Position *string `json:"position"`
}

type FilterStaff struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Active    *bool  `json:"active"`
}
