package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/campuscanteen/canteen-app/models"
	"github.com/campuscanteen/canteen-app/services"
	"github.com/campuscanteen/canteen-app/utils"
)

type AdminController struct {
	DB     *gorm.DB
	Orders *services.OrderService
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db, Orders: services.NewOrderService(db)}
}

// Login -> admin email + password, returns a JWT carrying role=admin.
func (ac *AdminController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ? AND role = ?", input.Email, models.RoleAdmin).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, models.ErrAuth)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, models.ErrAuth)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Admin login: %s", user.Email)
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
	})
}

// UpdateOrderStatus -> admin marks an order Complete. Repeating the call on
// an already-Complete order is a 409, not a silent success.
func (ac *AdminController) UpdateOrderStatus(c *gin.Context) {
	roleInterface, _ := c.Get("role")
	if roleInterface != models.RoleAdmin {
		utils.RespondError(c, http.StatusForbidden, models.ErrForbidden)
		return
	}

	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var body struct {
		DeliveryStatus string `json:"deliveryStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.DeliveryStatus != models.StatusComplete {
		utils.RespondError(c, http.StatusBadRequest, errors.New("deliveryStatus must be Complete"))
		return
	}

	order, err := ac.Orders.MarkComplete(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// GetOrders -> admin order listing, today's orders by default or ?date=.
func (ac *AdminController) GetOrders(c *gin.Context) {
	roleInterface, _ := c.Get("role")
	if roleInterface != models.RoleAdmin {
		utils.RespondError(c, http.StatusForbidden, models.ErrForbidden)
		return
	}

	date := c.Query("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	orders, err := ac.Orders.OrdersByDate(date)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}
