package routes

import (
	"hms/constants"
	"hms/controllers"
	middlewares "hms/middleware"
	"hms/services"
	"hms/services/logger"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes dựng toàn bộ service graph và gắn route cho API v1
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) *services.SweeperAdapter {
	l := logger.NewDefaultLogger(logger.InfoLevel)
	idx := services.NewGormInventoryIndex(db)

	bookingService := services.NewBookingService(services.BookingServiceOptions{
		DB:     db,
		Index:  idx,
		Logger: l.Named("booking"),
		WS:     m,
	})
	blockService := services.NewBlockService(db, idx, l.Named("block"))
	kycService := services.NewKYCService(db, cld)

	authController := controllers.NewAuthController(db)
	hotelController := controllers.NewHotelController(db)
	roomController := controllers.NewRoomController(db)
	bookingController := controllers.NewBookingController(db, redisCli, bookingService)
	blockController := controllers.NewBlockController(blockService)
	kycController := controllers.NewKYCController(kycService)

	staff := []int{constants.RoleSuperAdmin, constants.RoleManager, constants.RoleReceptionist}
	admins := []int{constants.RoleSuperAdmin, constants.RoleManager}

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", authController.Login)
	v1.POST("/auth/register", authController.Register)
	v1.GET("/profile", middlewares.AuthMiddleware(), authController.GetProfile)

	v1.GET("/hotels", hotelController.GetHotels)
	v1.GET("/hotels/:id", hotelController.GetHotelDetail)
	v1.POST("/hotels", middlewares.AuthMiddleware(admins...), hotelController.CreateHotel)
	v1.PUT("/hotels", middlewares.AuthMiddleware(admins...), hotelController.UpdateHotel)

	v1.GET("/rooms", roomController.GetRooms)
	v1.GET("/rooms/:id", roomController.GetRoomDetail)
	v1.POST("/rooms", middlewares.AuthMiddleware(admins...), roomController.CreateRoom)
	v1.PUT("/rooms", middlewares.AuthMiddleware(admins...), roomController.UpdateRoom)

	v1.GET("/bookings/availability", bookingController.CheckAvailability)
	v1.POST("/bookings", bookingController.CreateBooking)
	v1.POST("/bookings/online", bookingController.CreateOnlineBooking)
	v1.POST("/bookings/admin", middlewares.AuthMiddleware(admins...), bookingController.CreateAdminBooking)
	v1.POST("/bookings/offline", middlewares.AuthMiddleware(staff...), bookingController.CreateOfflineBooking)
	v1.GET("/bookings", middlewares.AuthMiddleware(staff...), bookingController.GetBookings)
	v1.GET("/bookings/:id", middlewares.AuthMiddleware(staff...), bookingController.GetBookingDetail)
	v1.GET("/bookings/:id/history", middlewares.AuthMiddleware(staff...), bookingController.GetHistory)
	v1.PATCH("/bookings/:id", middlewares.AuthMiddleware(staff...), bookingController.Modify)
	v1.PATCH("/bookings/:id/status", middlewares.AuthMiddleware(staff...), bookingController.ChangeStatus)
	v1.PATCH("/bookings/:id/confirm", middlewares.AuthMiddleware(staff...), bookingController.Confirm)
	v1.PATCH("/bookings/:id/check-in", middlewares.AuthMiddleware(staff...), bookingController.CheckIn)
	v1.PATCH("/bookings/:id/check-out", middlewares.AuthMiddleware(staff...), bookingController.CheckOut)
	v1.PATCH("/bookings/:id/cancel", middlewares.AuthMiddleware(staff...), bookingController.Cancel)
	v1.PATCH("/bookings/:id/physical-checkin", middlewares.AuthMiddleware(staff...), bookingController.PhysicalCheckIn)

	v1.POST("/blocks", middlewares.AuthMiddleware(admins...), blockController.CreateBlock)
	v1.GET("/blocks", middlewares.AuthMiddleware(staff...), blockController.GetBlocks)
	v1.DELETE("/blocks/:id", middlewares.AuthMiddleware(admins...), blockController.DeleteBlock)

	v1.POST("/kyc/upload", middlewares.AuthMiddleware(staff...), kycController.Upload)
	v1.PUT("/kyc/verify", middlewares.AuthMiddleware(staff...), kycController.Verify)
	v1.GET("/bookings/:id/kyc", middlewares.AuthMiddleware(staff...), kycController.ListForBooking)

	return services.NewSweeperAdapter(bookingService, blockService)
}
