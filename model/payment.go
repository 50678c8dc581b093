package model

import "time"

type Payment struct {
	DTO
	PaymentNo     int         `gorm:"uniqueIndex;not null" json:"paymentNo"`
	ReservationId uint        `gorm:"not null" json:"reservationId"`
	Reservation   Reservation `gorm:"foreignKey:ReservationId" json:"-"`
	PaymentCode   string      `gorm:"unique" json:"paymentCode"`
	Amount        float64     `gorm:"not null" json:"amount"`
	Method        string      `json:"method"`                          // CASH, GCASH
	Status        string      `gorm:"default:PENDING" json:"status"`   // PENDING, PAID, FAILED, REFUNDED
	ProofUrl      *string     `json:"proofUrl,omitempty"`              // GCash proof screenshot
	PaidAt        *time.Time  `json:"paidAt,omitempty"`
}

type Payments []Payment

type CreatePaymentInput struct {
	ReservationNo int    `json:"reservationNo" validate:"required,gt=0"`
	Method        string `json:"method" validate:"required,oneof=CASH GCASH"`
}

type UpdatePaymentStatusInput struct {
	Status string `json:"status" validate:"required"`
}

type FilterPayment struct {
	Pagination
	Status *string `json:"status"`
	Method *string `json:"method"`
}
