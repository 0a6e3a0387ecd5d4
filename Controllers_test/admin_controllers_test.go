package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/campuscanteen/canteen-app/models"
	"github.com/campuscanteen/canteen-app/router"
	"github.com/campuscanteen/canteen-app/services"
	"github.com/campuscanteen/canteen-app/utils"
)

func setupTestDBForAdmin(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.FoodItem{}, &models.Order{}); err != nil {
		t.Fatal(err)
	}
	if err := services.SeedFoodItems(db); err != nil {
		t.Fatal(err)
	}

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	db.Create(&models.User{
		Name:     "Test Admin",
		Email:    "admin@example.com",
		Password: string(hashed),
		Role:     models.RoleAdmin,
	})
	db.Create(&models.User{
		Name:  "Test Customer",
		Email: "customer@example.com",
		Role:  models.RoleCustomer,
	})
	return db
}

func setupAdminRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return router.SetupRouter(db, services.NewOTPService(services.LogMailer{}))
}

func adminLogin(t *testing.T, r *gin.Engine) string {
	body, _ := json.Marshal(map[string]string{
		"email":    "admin@example.com",
		"password": "secret123",
	})
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	token := resp["data"].(map[string]interface{})["token"].(string)
	assert.NotEmpty(t, token)
	return token
}

func placeTestOrder(t *testing.T, r *gin.Engine) int {
	body, _ := json.Marshal(map[string]interface{}{
		"userName":     "A",
		"mobileNumber": "999",
		"foodItemId":   1,
		"quantity":     1,
	})
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return int(resp["data"].(map[string]interface{})["id"].(float64))
}

func markComplete(r *gin.Engine, orderID int, token string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"deliveryStatus": models.StatusComplete})
	req := httptest.NewRequest(http.MethodPut,
		fmt.Sprintf("/admin/orders/%d/status", orderID), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminMarksOrderComplete(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForAdmin(t)
	r := setupAdminRouter(db)

	token := adminLogin(t, r)
	orderID := placeTestOrder(t, r)

	w := markComplete(r, orderID, token)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, models.StatusComplete, data["deliveryStatus"])

	// Completing an already-Complete order is an illegal transition.
	w = markComplete(r, orderID, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	var stored models.Order
	assert.NoError(t, db.First(&stored, orderID).Error)
	assert.Equal(t, models.StatusComplete, stored.DeliveryStatus)
}

func TestMarkCompleteRequiresAdmin(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForAdmin(t)
	r := setupAdminRouter(db)

	orderID := placeTestOrder(t, r)

	// No token at all
	w := markComplete(r, orderID, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Customer token
	var customer models.User
	assert.NoError(t, db.Where("email = ?", "customer@example.com").First(&customer).Error)
	customerToken, err := utils.GenerateToken(customer.ID, customer.Role)
	assert.NoError(t, err)

	w = markComplete(r, orderID, customerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var stored models.Order
	assert.NoError(t, db.First(&stored, orderID).Error)
	assert.Equal(t, models.StatusIncomplete, stored.DeliveryStatus)
}

func TestMarkCompleteUnknownOrderIs404(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForAdmin(t)
	r := setupAdminRouter(db)

	token := adminLogin(t, r)
	w := markComplete(r, 4242, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForAdmin(t)
	r := setupAdminRouter(db)

	body, _ := json.Marshal(map[string]string{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOrderListing(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForAdmin(t)
	r := setupAdminRouter(db)

	token := adminLogin(t, r)
	placeTestOrder(t, r)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]interface{})
	assert.Len(t, data, 1)
}
