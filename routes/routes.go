package routes

import (
	"net/http"
	"time"

	"coursely/handlers"
	"coursely/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects every handler the router needs.
type HandlerBundle struct {
	Booking *handlers.BookingHandler
	Catalog *handlers.CatalogHandler
	Cart    *handlers.CartHandler
	Admin   *handlers.AdminHandler
}

// RegisterRoutes wires CORS, health and all API groups.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}

// RegisterCatalogRoutes registers public catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/courses", hb.Catalog.ListCourses)
		api.GET("/courses/:id", hb.Catalog.GetCourse)
		api.GET("/categories", hb.Catalog.ListCategories)
	}
}

// RegisterCartRoutes registers cart endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.POST("", hb.Cart.CreateCart)
		api.GET("/:cartID", hb.Cart.GetCart)
		api.POST("/:cartID/items", hb.Cart.AddItem)
		api.PUT("/:cartID/items/:courseID", hb.Cart.UpdateItem)
		api.DELETE("/:cartID/items/:courseID", hb.Cart.RemoveItem)
		api.POST("/:cartID/discount", hb.Cart.ApplyDiscount)
		api.DELETE("/:cartID", hb.Cart.ClearCart)
	}
}

// RegisterBookingRoutes registers the booking modal flow.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/booking")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.POST("/session", hb.Booking.InitiateSession)
		api.GET("/session/:sessionID", hb.Booking.GetSession)
		api.PUT("/session/:sessionID/duration", hb.Booking.SelectDuration)
		api.PUT("/session/:sessionID/date", hb.Booking.SelectDate)
		api.PUT("/session/:sessionID/month", hb.Booking.ChangeMonth)
		api.PUT("/session/:sessionID/slot", hb.Booking.SelectSlot)
		api.POST("/session/:sessionID/details", hb.Booking.SubmitDetails)
		api.POST("/session/:sessionID/pay", hb.Booking.Pay)
		api.POST("/session/:sessionID/retry", hb.Booking.Retry)
		api.DELETE("/session/:sessionID", hb.Booking.CancelSession)
	}
}

// RegisterAdminRoutes registers the management dashboard endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.JWTAuthMiddleware(), middleware.AdminAuthMiddleware())
	{
		api.GET("/users", hb.Admin.ListUsers)
		api.GET("/users/:id", hb.Admin.GetUser)
		api.PUT("/users/:id", hb.Admin.UpdateUser)
		api.DELETE("/users/:id", hb.Admin.DeleteUser)

		api.POST("/courses", hb.Admin.CreateCourse)
		api.PUT("/courses/:id", hb.Admin.UpdateCourse)
		api.DELETE("/courses/:id", hb.Admin.DeleteCourse)

		api.POST("/categories", hb.Admin.CreateCategory)
		api.PUT("/categories/:id", hb.Admin.UpdateCategory)
		api.DELETE("/categories/:id", hb.Admin.DeleteCategory)

		api.GET("/content", hb.Admin.ListContent)
		api.PUT("/content/:slug", hb.Admin.SaveContent)
		api.DELETE("/content/:slug", hb.Admin.DeleteContent)

		api.GET("/appointments", hb.Admin.ListAppointments)
		api.POST("/appointments", hb.Admin.CreateAppointment)
		api.PUT("/appointments/:id", hb.Admin.UpdateAppointment)
		api.DELETE("/appointments/:id", hb.Admin.DeleteAppointment)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Coursely"})
	})
}
