package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/campuscanteen/canteen-app/models"
	"github.com/campuscanteen/canteen-app/utils"
)

// OrderService is the only place orders are created or have their status
// changed. Pricing always comes from the catalog row, never from the client.
type OrderService struct {
	DB      *gorm.DB
	Catalog *CatalogService
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db, Catalog: NewCatalogService(db)}
}

// PlaceOrder validates the request, prices it from the catalog and persists
// the order in Incomplete status stamped with the current UTC time.
func (svc *OrderService) PlaceOrder(userName, mobileNumber string, foodItemID uint, quantity int) (*models.Order, error) {
	if userName == "" || mobileNumber == "" {
		return nil, fmt.Errorf("%w: customer name and mobile number are required", models.ErrValidation)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", models.ErrValidation)
	}

	item, err := svc.Catalog.GetFoodItem(foodItemID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown food item %d", models.ErrValidation, foodItemID)
		}
		return nil, err
	}

	order := models.Order{
		UserName:       userName,
		MobileNumber:   mobileNumber,
		FoodItemName:   item.Name,
		Quantity:       quantity,
		Price:          item.Price,
		Total:          item.Price * quantity,
		DeliveryStatus: models.StatusIncomplete,
		OrderTime:      time.Now().UTC(),
	}

	if err := svc.DB.Create(&order).Error; err != nil {
		utils.ErrorLogger.Printf("failed to persist order for %s: %v", mobileNumber, err)
		return nil, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}

	utils.InfoLogger.Printf("Order #%d placed: %dx %s for %s (total %d)",
		order.ID, order.Quantity, order.FoodItemName, order.MobileNumber, order.Total)
	return &order, nil
}

// MarkComplete transitions an order from Incomplete to Complete. The update
// is conditional on the current status so two admins racing on the same
// order cannot both win; the loser sees ErrInvalidTransition.
func (svc *OrderService) MarkComplete(orderID uint) (*models.Order, error) {
	res := svc.DB.Model(&models.Order{}).
		Where("id = ? AND delivery_status = ?", orderID, models.StatusIncomplete).
		Update("delivery_status", models.StatusComplete)
	if res.Error != nil {
		utils.ErrorLogger.Printf("failed to update order #%d status: %v", orderID, res.Error)
		return nil, fmt.Errorf("%w: %v", models.ErrPersistence, res.Error)
	}

	if res.RowsAffected == 0 {
		// Either the order does not exist or it is already Complete.
		var order models.Order
		if err := svc.DB.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: order %d", models.ErrNotFound, orderID)
			}
			return nil, fmt.Errorf("%w: %v", models.ErrPersistence, err)
		}
		return nil, fmt.Errorf("%w: order %d is already %s", models.ErrInvalidTransition, orderID, order.DeliveryStatus)
	}

	var order models.Order
	if err := svc.DB.First(&order, orderID).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}

	utils.InfoLogger.Printf("Order #%d marked %s", order.ID, order.DeliveryStatus)
	return &order, nil
}

// GetOrder returns a single order by id.
func (svc *OrderService) GetOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := svc.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", models.ErrNotFound, orderID)
		}
		return nil, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return &order, nil
}

// OrdersByMobileNumber returns every order placed under the number, newest
// first, completed orders included.
func (svc *OrderService) OrdersByMobileNumber(mobileNumber string) ([]models.Order, error) {
	var orders []models.Order
	if err := svc.DB.
		Where("mobile_number = ?", mobileNumber).
		Order("order_time desc").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return orders, nil
}

// OrdersByDate returns all orders placed within the given UTC calendar day.
// date must be in YYYY-MM-DD form.
func (svc *OrderService) OrdersByDate(date string) ([]models.Order, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", models.ErrValidation, date)
	}

	start := day
	end := day.Add(24 * time.Hour)

	var orders []models.Order
	if err := svc.DB.
		Where("order_time >= ? AND order_time < ?", start, end).
		Order("order_time desc").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return orders, nil
}
