package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bookstore_back_end/internal/handlers"
	"bookstore_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	api.Use(h.CartSession())
	{
		// Catalogue
		api.GET("/books", h.ListBooks)
		api.GET("/books/:title", h.GetBook)

		// Panier
		api.GET("/cart", h.GetCart)
		api.POST("/cart/add", h.AddToCart)
		api.POST("/cart/update", h.UpdateCart)
		api.POST("/cart/remove", h.RemoveFromCart)
		api.POST("/cart/clear", h.ClearCart)
		api.GET("/cart/ws", h.CartWebSocket)

		// Checkout
		api.GET("/checkout", h.CheckoutSummary)
		api.POST("/checkout", h.ProcessCheckout)

		// Commandes
		api.GET("/orders/:id", h.OrderConfirmation)
		api.GET("/orders/:id/qr", h.OrderQR)

		// Auth
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.GET("/auth/logout", h.Logout)

		// Compte (token obligatoire)
		account := api.Group("/account")
		account.Use(middleware.AuthRequired())
		{
			account.GET("", h.Account)
			account.POST("/update", h.UpdateProfile)
			account.GET("/orders", h.MyOrders)
		}
	}
}
