package model

type Feedback struct {
	DTO
	CustomerId    uint         `gorm:"not null" json:"customerId"`
	Customer      *Customer    `gorm:"foreignKey:CustomerId" json:"customer,omitempty"`
	ReservationId *uint        `json:"reservationId,omitempty"`
	Reservation   *Reservation `gorm:"foreignKey:ReservationId" json:"-"`
	Rating        int          `gorm:"not null" validate:"required,min=1,max=5" json:"rating"`
	Comment       string       `json:"comment"`
}

type Feedbacks []Feedback

type CreateFeedbackInput struct {
	ReservationNo *int   `json:"reservationNo"`
	Rating        int    `validate:"required,min=1,max=5" json:"rating"`
	Comment       string `json:"comment"`
}
