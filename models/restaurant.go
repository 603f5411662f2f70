package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Restaurant struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name    string             `json:"name" bson:"name"`
	Cuisine string             `json:"cuisine" bson:"cuisine"`
	Rating  float64            `json:"rating" bson:"rating"`
}

// MenuItem references its restaurant by ID only; the reference is not
// existence-checked on write.
type MenuItem struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RestaurantID primitive.ObjectID `json:"restaurantId" bson:"restaurantId"`
	Name         string             `json:"name" bson:"name"`
	Price        float64            `json:"price" bson:"price"`
}
