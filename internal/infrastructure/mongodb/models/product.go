package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ProductModel mirrors one document of the "products" collection.
// Price and negotiable stay text fields; merchant name and contact number
// are denormalized onto every product.
type ProductModel struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Price          string             `bson:"price"`
	Description    string             `bson:"description"`
	Specifications string             `bson:"specifications"`
	Condition      string             `bson:"condition"`
	Category       string             `bson:"category"`
	Negotiable     string             `bson:"negotiable"`
	ImageURLs      []string           `bson:"imageUrls"`
	MerchantID     string             `bson:"merchantId"`
	BrandName      string             `bson:"brandName"`
	MerchantNo     string             `bson:"merchantNo"`
	AddedDate      string             `bson:"addedDate"`
	LastUpdated    string             `bson:"lastUpdated,omitempty"`
}
