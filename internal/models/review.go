package models

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrDuplicateReviewer : un même nom ne peut publier qu'un avis par produit.
var ErrDuplicateReviewer = errors.New("cet utilisateur a déjà publié un avis pour ce produit")

type Review struct {
	Name     string  `bson:"name" json:"name"`
	Comments string  `bson:"comments" json:"comments"`
	Rating   float64 `bson:"rating" json:"rating"`
}

// ProductReview regroupe tous les avis d'un produit dans un seul document.
type ProductReview struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductName string             `bson:"product_name" json:"product_name"`
	Reviews     []Review           `bson:"reviews" json:"reviews"`
}

// AddReview ajoute l'avis, ou refuse si ce nom a déjà publié.
func (pr *ProductReview) AddReview(review Review) error {
	for _, existing := range pr.Reviews {
		if existing.Name == review.Name {
			return ErrDuplicateReviewer
		}
	}
	pr.Reviews = append(pr.Reviews, review)
	return nil
}
