package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SebastianCO11/Drone-System-Prototype/config"
	"github.com/SebastianCO11/Drone-System-Prototype/controllers"
	"github.com/SebastianCO11/Drone-System-Prototype/middleware"
	"github.com/SebastianCO11/Drone-System-Prototype/models"
	"github.com/SebastianCO11/Drone-System-Prototype/services"
)

// setupRouter wires controllers and middleware onto a gin engine. Dependencies
// are injected so the integration tests can pass an in-memory database and
// mock services.
func setupRouter(db *gorm.DB, cfg *config.Config, mailer services.MailService, images services.ImageService) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	tokens := services.NewTokenService(cfg)

	authCtrl := controllers.NewAuthController(db, tokens, mailer)
	userCtrl := controllers.NewUserController(db)
	deviceCtrl := controllers.NewDeviceController(db)
	routeCtrl := controllers.NewRouteController(db, images)
	reservationCtrl := controllers.NewReservationController(db)
	serviceCtrl := controllers.NewServiceController(db)
	weatherCtrl := controllers.NewWeatherController(db)
	logCtrl := controllers.NewLogController(db)
	orderCtrl := controllers.NewOrderController(db, mailer)

	api := router.Group("/api")

	// Public routes (no token)
	api.GET("/health", healthCheck)
	api.POST("/auth/login", authCtrl.Login)
	api.POST("/auth/recuperar", authCtrl.Recover)
	api.POST("/auth/restablecer", authCtrl.Reset)
	api.POST("/pedido", orderCtrl.Create)
	api.POST("/pedido/:id/verificar", orderCtrl.Verify)
	api.POST("/feedback", orderCtrl.Feedback)
	api.GET("/dispositivos/disponibles", deviceCtrl.ListAvailable)
	api.GET("/trayectos", routeCtrl.List)
	api.GET("/clima/:dia", weatherCtrl.GetByDay)

	// Protected routes (token required; role resolved per request)
	private := api.Group("")
	private.Use(middleware.RequireAuth(db, tokens))
	{
		private.GET("/users", middleware.RequireRole(models.RoleAdmin), userCtrl.List)
		private.POST("/users", middleware.RequireRole(models.RoleAdmin), userCtrl.Create)

		staffOrAbove := middleware.RequireRole(models.RoleAdmin, models.RoleOperator)
		anyRole := middleware.RequireRole(models.RoleAdmin, models.RoleOperator, models.RoleConsultor)

		private.GET("/dispositivos", anyRole, deviceCtrl.List)
		private.POST("/dispositivos", staffOrAbove, deviceCtrl.Create)
		private.PUT("/dispositivos/:id", staffOrAbove, deviceCtrl.Update)

		private.GET("/reservas", anyRole, reservationCtrl.List)
		private.POST("/reservas", staffOrAbove, reservationCtrl.Create)
		private.DELETE("/reservas/:id", middleware.RequireRole(models.RoleAdmin), reservationCtrl.Delete)

		private.GET("/servicios", anyRole, serviceCtrl.List)
		private.POST("/servicios", staffOrAbove, serviceCtrl.Create)

		private.GET("/clima", anyRole, weatherCtrl.List)

		private.GET("/logs", middleware.RequireRole(models.RoleAdmin), logCtrl.List)

		private.POST("/trayectos", staffOrAbove, routeCtrl.Create)
		private.POST("/trayectos/:id/imagenes", staffOrAbove, routeCtrl.UploadImage)
	}

	// Single-page frontend
	router.Static("/app", "./web")
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/app")
	})

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"mensaje": "Drone Delivery API en línea"})
}
