package models

import "time"

// Delivery statuses. The only legal transition is Incomplete -> Complete;
// Complete is terminal.
const (
	StatusIncomplete = "Incomplete"
	StatusComplete   = "Complete"
)

type Order struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserName       string    `gorm:"type:varchar(255);not null" json:"userName"`
	MobileNumber   string    `gorm:"type:varchar(20);not null;index" json:"mobileNumber"`
	FoodItemName   string    `gorm:"type:varchar(255);not null" json:"foodItemName"`
	Quantity       int       `gorm:"not null" json:"quantity"`
	Price          int       `gorm:"not null" json:"price"`
	Total          int       `gorm:"not null" json:"total"`
	DeliveryStatus string    `gorm:"type:varchar(20);not null;default:'Incomplete'" json:"deliveryStatus"`
	OrderTime      time.Time `gorm:"not null;index" json:"orderTime"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}
