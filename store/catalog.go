package store

import (
	"context"
	"fmt"

	"github.com/Bowya123/swiggybackend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogStore holds restaurants and their menu items. No business rules
// beyond field presence: menu items reference restaurants without an
// existence check.
type CatalogStore struct {
	restaurants *mongo.Collection
	menuItems   *mongo.Collection
}

func NewCatalogStore(database *mongo.Database) *CatalogStore {
	return &CatalogStore{
		restaurants: database.Collection("restaurants"),
		menuItems:   database.Collection("menuitems"),
	}
}

func (s *CatalogStore) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	cur, err := s.restaurants.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find restaurants: %w", err)
	}
	restaurants := []models.Restaurant{}
	if err := cur.All(ctx, &restaurants); err != nil {
		return nil, fmt.Errorf("decode restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *CatalogStore) CreateRestaurant(ctx context.Context, name, cuisine string, rating float64) (*models.Restaurant, error) {
	restaurant := models.Restaurant{Name: name, Cuisine: cuisine, Rating: rating}
	res, err := s.restaurants.InsertOne(ctx, restaurant)
	if err != nil {
		return nil, fmt.Errorf("insert restaurant: %w", err)
	}
	restaurant.ID = res.InsertedID.(primitive.ObjectID)
	return &restaurant, nil
}

func (s *CatalogStore) ListMenu(ctx context.Context, restaurantID primitive.ObjectID) ([]models.MenuItem, error) {
	cur, err := s.menuItems.Find(ctx, bson.M{"restaurantId": restaurantID})
	if err != nil {
		return nil, fmt.Errorf("find menu items: %w", err)
	}
	items := []models.MenuItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode menu items: %w", err)
	}
	return items, nil
}

func (s *CatalogStore) AddMenuItem(ctx context.Context, restaurantID primitive.ObjectID, name string, price float64) (*models.MenuItem, error) {
	item := models.MenuItem{RestaurantID: restaurantID, Name: name, Price: price}
	res, err := s.menuItems.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("insert menu item: %w", err)
	}
	item.ID = res.InsertedID.(primitive.ObjectID)
	return &item, nil
}
