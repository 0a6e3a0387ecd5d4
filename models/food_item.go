package models

import "time"

// Food categories available in the canteen.
const (
	CategorySnacks     = "Snacks"
	CategoryChinese    = "Chinese"
	CategoryMainCourse = "Main Course"
	CategoryDesserts   = "Desserts"
)

type FoodItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(255);not null" json:"name"`
	Category  string `gorm:"type:varchar(50);not null" json:"category"`
	Price     int    `gorm:"not null" json:"price"`
	ImageURL  string `gorm:"type:varchar(255)" json:"image"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// DefaultFoodItems is the catalog seeded on first boot. Items are never
// updated or deleted afterwards; orders snapshot name and price at placement
// time, so later catalog edits can never rewrite a placed order.
func DefaultFoodItems() []FoodItem {
	return []FoodItem{
		{Name: "Samosa", Category: CategorySnacks, Price: 20, ImageURL: "/images/samosa.jpg"},
		{Name: "Spring Roll", Category: CategoryChinese, Price: 30, ImageURL: "/images/spring-roll.jpg"},
		{Name: "Biryani", Category: CategoryMainCourse, Price: 100, ImageURL: "/images/biryani.jpg"},
		{Name: "Gulab Jamun", Category: CategoryDesserts, Price: 40, ImageURL: "/images/gulab-jamun.jpg"},
		{Name: "Chowmein", Category: CategoryChinese, Price: 50, ImageURL: "/images/chowmein.jpg"},
	}
}
