package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campuscanteen/canteen-app/controllers"
	"github.com/campuscanteen/canteen-app/middlewares"
	"github.com/campuscanteen/canteen-app/services"
)

func SetupRouter(db *gorm.DB, otp *services.OTPService) *gin.Engine {
	r := gin.Default()

	// 50 requests per second per IP across the whole API. Must be attached
	// before any route is registered or gin never runs it for them.
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	foodCtrl := controllers.NewFoodController(db)
	orderCtrl := controllers.NewOrderController(db)
	authCtrl := controllers.NewAuthController(db, otp)
	adminCtrl := controllers.NewAdminController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Catalog
	r.GET("/foods", foodCtrl.GetFoods)

	// Orders (placement and customer/day queries)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders", orderCtrl.GetOrders)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)

	// Rate limiter for signup / OTP / login
	authGroup := r.Group("/")
	authGroup.Use(middlewares.NewStrictRateLimiter())
	{
		authGroup.POST("/signup", authCtrl.Signup)
		authGroup.POST("/send-otp", authCtrl.SendOTP)
		authGroup.POST("/auth", authCtrl.VerifyOTP)
		authGroup.POST("/admin/login", adminCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())
	{
		admin.GET("/orders", adminCtrl.GetOrders)
		admin.PUT("/orders/:order_id/status", adminCtrl.UpdateOrderStatus)
	}

	return r
}
