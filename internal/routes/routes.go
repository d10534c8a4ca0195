package routes

import (
	"net/http"

	"shopcart_backend/internal/handlers/product"
	"shopcart_backend/internal/handlers/user"
	"shopcart_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "shopcart_backend", "status": "ok"})
	})

	api := r.Group("/api/users")

	// Catalogue
	api.POST("/data", product.CreateProduct)
	api.GET("/data", product.GetAllProducts)

	// Comptes
	api.POST("/register", middleware.RateLimit("register_attempts", middleware.RegisterMaxAttempts), user.Register)
	api.POST("/login", middleware.RateLimit("login_attempts", middleware.LoginMaxAttempts), user.Login)
	api.GET("/me", middleware.AuthRequired(), user.Me)
	api.PUT("/address", user.UpdateAddress)
	api.GET("/address", user.GetAddress)
	api.POST("/address", user.LookupUser)

	// Panier
	api.POST("/addcart", user.AddToCart)
	api.POST("/getcart", user.GetCart)
	api.POST("/itemexists", user.ItemExists)
	api.DELETE("/deletecart", user.RemoveFromCart)
	api.DELETE("/deleteall", user.ClearCart)
	api.PUT("/qty", user.UpdateQuantity)

	// Avis
	api.POST("/review", product.CreateReview)
	api.POST("/getreview", product.GetReviews)
}
