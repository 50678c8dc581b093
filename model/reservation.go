package model

import (
	"catering_manager/utils"
	"time"
)

// Venue is the delivery address captured on a reservation.
type Venue struct {
	Municipality string  `gorm:"not null" json:"municipality"`
	Barangay     string  `gorm:"not null" json:"barangay"`
	Street       string  `gorm:"not null" json:"street"`
	LotBlock     *string `json:"lotBlock,omitempty"`
	Landmark     *string `json:"landmark,omitempty"`
	PostalCode   *string `json:"postalCode,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

type Reservation struct {
	DTO
	ReservationNo  int              `gorm:"uniqueIndex;not null" json:"reservationNo"`
	CustomerId     uint             `gorm:"not null" json:"customerId"` // set once at creation
	Customer       *Customer        `gorm:"foreignKey:CustomerId" json:"customer,omitempty"`
	ContactName    string           `gorm:"not null" json:"contactName"`
	PhoneNumber    string           `gorm:"not null" json:"phoneNumber"`
	NumberOfGuests int              `gorm:"not null" json:"numberOfGuests"`
	TimeSlot       string           `gorm:"not null" json:"timeSlot"` // LUNCH, EARLY_DINNER, DINNER
	EventDate      utils.CustomDate `gorm:"type:date;index;not null" json:"eventDate"`
	Venue          Venue            `gorm:"embedded;embeddedPrefix:venue_" json:"venue"`

	Selections []ReservationSelection `gorm:"foreignKey:ReservationId" json:"selections"`
	AddOns     []ReservationAddOn     `gorm:"foreignKey:ReservationId" json:"addOns"`

	SpecialNotes *string `json:"specialNotes,omitempty"`
	TotalAmount  float64 `gorm:"not null" json:"totalAmount"`
	Status       string  `gorm:"not null;default:PENDING" json:"status"`

	PaymentRequired bool `gorm:"default:false" json:"paymentRequired"`
	IsPaid          bool `gorm:"default:false" json:"isPaid"`

	AcceptedAt  *time.Time `json:"acceptedAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type Reservations []Reservation

// ReservationSelection is the single chosen product for one offered category.
type ReservationSelection struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ReservationId uint      `gorm:"not null;index" json:"reservationId"`
	CategoryId    uint      `gorm:"not null" json:"categoryId"`
	Category      *Category `gorm:"foreignKey:CategoryId" json:"category,omitempty"`
	ProductId     uint      `gorm:"not null" json:"productId"`
	Product       *Product  `gorm:"foreignKey:ProductId" json:"product,omitempty"`
}

// ReservationAddOn is an item ordered beyond the category selections.
// Duplicates are allowed; each repetition adds cost.
type ReservationAddOn struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	ReservationId uint     `gorm:"not null;index" json:"reservationId"`
	ProductId     uint     `gorm:"not null" json:"productId"`
	Product       *Product `gorm:"foreignKey:ProductId" json:"product,omitempty"`
	Position      int      `gorm:"not null" json:"position"`
}

type VenueInput struct {
	Municipality string  `validate:"required" json:"municipality"`
	Barangay     string  `validate:"required" json:"barangay"`
	Street       string  `validate:"required,min=5" json:"street"`
	LotBlock     *string `json:"lotBlock"`
	Landmark     *string `json:"landmark"`
	PostalCode   *string `json:"postalCode"`
	Notes        *string `json:"notes"`
}

type CreateReservationInput struct {
	NumberOfGuests int              `validate:"required" json:"numberOfGuests"`
	TimeSlot       string           `validate:"required" json:"timeSlot"`
	EventDate      utils.CustomDate `json:"eventDate"`
	Venue          VenueInput       `json:"venue"`
	// Category name -> chosen product id, exactly one per category.
	Selections   map[string]uint `json:"selections"`
	AddOns       []uint          `json:"addOns"`
	SpecialNotes *string         `json:"specialNotes"`
}

type UpdateReservationStatusInput struct {
	Status string `validate:"required" json:"status"`
}

type FilterReservation struct {
	Pagination
	SearchKey string            `json:"searchKey"`
	Status    *string           `json:"status"`
	From      *utils.CustomDate `json:"from"`
	To        *utils.CustomDate `json:"to"`
}

// BookedSlot is one date/slot pair returned by the availability query.
type BookedSlot struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}
