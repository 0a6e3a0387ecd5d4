package controllers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campuscanteen/canteen-app/models"
	"github.com/campuscanteen/canteen-app/services"
	"github.com/campuscanteen/canteen-app/utils"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type AuthController struct {
	DB  *gorm.DB
	OTP *services.OTPService
}

func NewAuthController(db *gorm.DB, otp *services.OTPService) *AuthController {
	return &AuthController{DB: db, OTP: otp}
}

// Signup registers a new customer by name and email.
func (ac *AuthController) Signup(c *gin.Context) {
	var input struct {
		Name         string `json:"name" binding:"required"`
		Email        string `json:"email" binding:"required"`
		MobileNumber string `json:"mobileNumber"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !emailPattern.MatchString(input.Email) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid email"))
		return
	}

	var existing models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		utils.RespondError(c, http.StatusConflict, errors.New("user already exists"))
		return
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		MobileNumber: input.MobileNumber,
		Role:         models.RoleCustomer,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New customer registered: %s", user.Email)
	utils.RespondJSON(c, http.StatusOK, "Signup successful", gin.H{"user_id": user.ID})
}

// SendOTP issues a one-time code to the email.
func (ac *AuthController) SendOTP(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || !emailPattern.MatchString(input.Email) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid email"))
		return
	}

	if err := ac.OTP.Issue(input.Email); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "OTP sent", nil)
}

// VerifyOTP checks the code and, on success, issues a customer session
// token. A matching code is consumed and cannot be replayed.
func (ac *AuthController) VerifyOTP(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || len(input.OTP) != 4 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid input"))
		return
	}

	if !ac.OTP.Verify(input.Email, input.OTP) {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid OTP"))
		return
	}

	// A verified email that never went through signup still gets an
	// account, named after the mailbox.
	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		user = models.User{
			Name:  strings.SplitN(input.Email, "@", 2)[0],
			Email: input.Email,
			Role:  models.RoleCustomer,
		}
		if err := ac.DB.Create(&user).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Verification successful", gin.H{
		"token": token,
	})
}
