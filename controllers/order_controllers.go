package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campuscanteen/canteen-app/services"
	"github.com/campuscanteen/canteen-app/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{Orders: services.NewOrderService(db)}
}

// CreateOrder -> place an order. Only the item id and quantity come from
// the client; price and total are derived from the catalog server-side.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type ReqBody struct {
		UserName     string `json:"userName" binding:"required"`
		MobileNumber string `json:"mobileNumber" binding:"required"`
		FoodItemID   uint   `json:"foodItemId" binding:"required"`
		Quantity     int    `json:"quantity" binding:"required"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.PlaceOrder(body.UserName, body.MobileNumber, body.FoodItemID, body.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order placed", order)
}

// GetOrders -> list orders by ?mobileNumber= or by ?date= (UTC day).
func (oc *OrderController) GetOrders(c *gin.Context) {
	mobileNumber := c.Query("mobileNumber")
	date := c.Query("date")

	switch {
	case mobileNumber != "":
		orders, err := oc.Orders.OrdersByMobileNumber(mobileNumber)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
	case date != "":
		orders, err := oc.Orders.OrdersByDate(date)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
	default:
		utils.RespondError(c, http.StatusBadRequest, errors.New("mobileNumber or date query is required"))
	}
}

// GetOrderByID -> detail of one order
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	order, err := oc.Orders.GetOrder(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}
