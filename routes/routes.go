package routes

import (
	"github.com/Bowya123/swiggybackend/auth"
	"github.com/Bowya123/swiggybackend/handlers"
	"github.com/Bowya123/swiggybackend/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, tokens *auth.TokenService, authH *handlers.AuthHandler, restaurantH *handlers.RestaurantHandler, orderH *handlers.OrderHandler) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/register", authH.Register)
		public.POST("/login", authH.Login)

		public.GET("/restaurants", restaurantH.ListRestaurants)
		public.GET("/menu/:restaurantId", restaurantH.GetMenu)
	}

	// ── Authenticated routes ───────────────────────────────────────
	protected := r.Group("/api")
	protected.Use(middleware.AuthRequired(tokens))
	{
		protected.POST("/restaurants", restaurantH.CreateRestaurant)
		protected.POST("/menu", restaurantH.AddMenuItem)

		protected.POST("/orders", orderH.PlaceOrder)
		protected.GET("/orders", orderH.GetMyOrders)
	}
}
