package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// OrderStatus represents an order's fulfillment state. This service only
// ever sets the initial one.
type OrderStatus string

const StatusPlaced OrderStatus = "Placed"

type Order struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID       primitive.ObjectID `json:"userId" bson:"userId"`
	RestaurantID primitive.ObjectID `json:"restaurantId" bson:"restaurantId"`
	Items        []OrderItem        `json:"items" bson:"items"`
	TotalPrice   float64            `json:"totalPrice" bson:"totalPrice"`
	Status       OrderStatus        `json:"status" bson:"status"`
}

// OrderItem is a snapshot of a menu item's name and price at order time.
// Later catalog edits never touch past orders.
type OrderItem struct {
	Name  string  `json:"name" bson:"name"`
	Price float64 `json:"price" bson:"price"`
}
