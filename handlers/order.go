package handlers

import (
	"net/http"

	"github.com/Bowya123/swiggybackend/middleware"
	"github.com/Bowya123/swiggybackend/models"
	"github.com/Bowya123/swiggybackend/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderHandler struct {
	orders *store.OrderStore
}

func NewOrderHandler(orders *store.OrderStore) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// PlaceOrderRequest deliberately has no userId field: the order's owner is
// always the authenticated caller.
type PlaceOrderRequest struct {
	RestaurantID string             `json:"restaurantId" binding:"required"`
	Items        []models.OrderItem `json:"items"`
	TotalPrice   float64            `json:"totalPrice"`
}

// PlaceOrder records an order for the authenticated user. Items and total
// price are client-asserted and stored as given.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	restaurantID, err := primitive.ObjectIDFromHex(req.RestaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error placing order", "error": err.Error()})
		return
	}

	order, err := h.orders.Place(c.Request.Context(), userID, restaurantID, req.Items, req.TotalPrice)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error placing order", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order placed", "order": order})
}

// GetMyOrders returns every order belonging to the authenticated user.
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	orders, err := h.orders.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching orders", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}
