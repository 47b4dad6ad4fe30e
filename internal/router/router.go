package router

import (
	"net/http"

	"camerashop-be/internal/handlers"
	"camerashop-be/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Orders  *handlers.OrderHandler
	Cart    *handlers.CartHandler
	Coupons *handlers.CouponHandler
	Admin   *handlers.AdminHandler
}

func Router(h Handlers, verifier *middleware.TokenVerifier, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.Metrics())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type", handlers.IdempotencyHeader},
		ExposeHeaders: []string{"Content-Length"},
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	v1.POST("/coupons/:code/validate", h.Coupons.Validate)

	auth := v1.Group("", middleware.AuthRequired(verifier, log))
	{
		auth.POST("/orders", h.Orders.CreateOrder)
		auth.GET("/orders", h.Orders.ListOrders)
		auth.GET("/orders/:id", h.Orders.GetOrder)
		auth.PUT("/orders/:id/cancel", h.Orders.CancelOrder)
		auth.POST("/orders/:id/reorder", h.Orders.Reorder)

		auth.GET("/cart", h.Cart.GetCart)
		auth.POST("/cart/add", h.Cart.AddItem)
		auth.PUT("/cart/items/:id", h.Cart.UpdateItem)
		auth.DELETE("/cart/items/:id", h.Cart.RemoveItem)
		auth.DELETE("/cart", h.Cart.Clear)
	}

	admin := auth.Group("/admin", middleware.AdminOnly())
	{
		admin.GET("/orders", h.Admin.ListOrders)
		admin.GET("/orders/:id", h.Admin.GetOrder)
		admin.PUT("/orders/:id/status", h.Admin.UpdateStatus)
		admin.DELETE("/orders/:id", h.Admin.DeleteOrder)

		admin.GET("/lowstock", h.Admin.ListLowStock)
		admin.GET("/lowstock/unread", h.Admin.UnreadLowStock)
		admin.PUT("/lowstock/:id/read", h.Admin.MarkLowStockRead)
	}

	return r
}
