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
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/campuscanteen/canteen-app/controllers"
	"github.com/campuscanteen/canteen-app/models"
	"github.com/campuscanteen/canteen-app/services"
	"github.com/campuscanteen/canteen-app/utils"
)

type testMailer struct {
	lastCode string
}

func (m *testMailer) SendOTP(email, code string) error {
	m.lastCode = code
	return nil
}

func setupAuthRouter(t *testing.T) (*gin.Engine, *gorm.DB, *testMailer) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatal(err)
	}

	mailer := &testMailer{}
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	authCtrl := controllers.NewAuthController(db, services.NewOTPService(mailer))
	router.POST("/signup", authCtrl.Signup)
	router.POST("/send-otp", authCtrl.SendOTP)
	router.POST("/auth", authCtrl.VerifyOTP)
	return router, db, mailer
}

func postJSON(t *testing.T, router *gin.Engine, url string, payload interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSignup(t *testing.T) {
	utils.InitLogger()
	router, db, _ := setupAuthRouter(t)

	w := postJSON(t, router, "/signup", map[string]string{
		"name":         "Test User",
		"email":        "test@example.com",
		"mobileNumber": "999",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var user models.User
	assert.NoError(t, db.Where("email = ?", "test@example.com").First(&user).Error)
	assert.Equal(t, models.RoleCustomer, user.Role)

	// Same email again
	w = postJSON(t, router, "/signup", map[string]string{
		"name":  "Test User",
		"email": "test@example.com",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Malformed email
	w = postJSON(t, router, "/signup", map[string]string{
		"name":  "Test User",
		"email": "not an email",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendOTPValidatesEmail(t *testing.T) {
	utils.InitLogger()
	router, _, mailer := setupAuthRouter(t)

	w := postJSON(t, router, "/send-otp", map[string]string{"email": "bogus"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mailer.lastCode)

	w = postJSON(t, router, "/send-otp", map[string]string{"email": "a@b.com"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, mailer.lastCode, 4)
}

func TestOTPLoginFlow(t *testing.T) {
	utils.InitLogger()
	router, _, mailer := setupAuthRouter(t)

	w := postJSON(t, router, "/send-otp", map[string]string{"email": "a@b.com"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Wrong code first
	wrong := "0000"
	if mailer.lastCode == wrong {
		wrong = "9999"
	}
	w = postJSON(t, router, "/auth", map[string]string{"email": "a@b.com", "otp": wrong})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Right code succeeds and yields a session token
	w = postJSON(t, router, "/auth", map[string]string{"email": "a@b.com", "otp": mailer.lastCode})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	token := resp["data"].(map[string]interface{})["token"].(string)
	claims, err := utils.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, claims.Role)

	// The code was consumed; replay fails.
	w = postJSON(t, router, "/auth", map[string]string{"email": "a@b.com", "otp": mailer.lastCode})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifyOTPRejectsMalformedInput(t *testing.T) {
	utils.InitLogger()
	router, _, _ := setupAuthRouter(t)

	w := postJSON(t, router, "/auth", map[string]string{"email": "", "otp": "1234"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, router, "/auth", map[string]string{"email": "a@b.com", "otp": "12"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
