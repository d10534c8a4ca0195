package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product reprend le schéma du catalogue d'origine : identifiant numérique
// applicatif en plus de l'_id Mongo, prix et note en chaînes.
type Product struct {
	OID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ID          int                `bson:"id" json:"id" binding:"required"`
	ProductName string             `bson:"product_name" json:"product_name" binding:"required"`
	Price       string             `bson:"price" json:"price" binding:"required"`
	Rating      string             `bson:"rating" json:"rating" binding:"required"`
	Features    []string           `bson:"features" json:"features" binding:"required"`
	ImageLink   string             `bson:"image_link" json:"image_link" binding:"required"`
}
