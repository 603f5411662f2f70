package handlers

import (
	"net/http"

	"github.com/Bowya123/swiggybackend/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RestaurantHandler struct {
	catalog *store.CatalogStore
}

func NewRestaurantHandler(catalog *store.CatalogStore) *RestaurantHandler {
	return &RestaurantHandler{catalog: catalog}
}

type CreateRestaurantRequest struct {
	Name    string  `json:"name" binding:"required"`
	Cuisine string  `json:"cuisine" binding:"required"`
	Rating  float64 `json:"rating"`
}

type AddMenuItemRequest struct {
	RestaurantID string  `json:"restaurantId" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Price        float64 `json:"price"`
}

// ListRestaurants returns all restaurants (public).
func (h *RestaurantHandler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.catalog.ListRestaurants(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching restaurants", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// CreateRestaurant adds a restaurant (authenticated).
func (h *RestaurantHandler) CreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	restaurant, err := h.catalog.CreateRestaurant(c.Request.Context(), req.Name, req.Cuisine, req.Rating)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding restaurant", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant added successfully", "restaurant": restaurant})
}

// GetMenu returns the menu for a specific restaurant (public).
func (h *RestaurantHandler) GetMenu(c *gin.Context) {
	restaurantID, err := primitive.ObjectIDFromHex(c.Param("restaurantId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching menu", "error": err.Error()})
		return
	}

	items, err := h.catalog.ListMenu(c.Request.Context(), restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching menu", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddMenuItem adds a menu item to a restaurant (authenticated). The
// restaurant reference is recorded as given, not existence-checked.
func (h *RestaurantHandler) AddMenuItem(c *gin.Context) {
	var req AddMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	restaurantID, err := primitive.ObjectIDFromHex(req.RestaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding menu item", "error": err.Error()})
		return
	}

	item, err := h.catalog.AddMenuItem(c.Request.Context(), restaurantID, req.Name, req.Price)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding menu item", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "menuItem": item})
}
