package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Cart struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Items []CartItem         `bson:"items" json:"items"`
}

// Les prix et notes sont stockés tels que fournis par le catalogue (chaînes).
type CartItem struct {
	ProductName string   `bson:"product_name" json:"product_name"`
	Price       string   `bson:"price" json:"price"`
	Rating      string   `bson:"rating" json:"rating"`
	Features    []string `bson:"features" json:"features"`
	ImageLink   string   `bson:"image_link" json:"image_link"`
	Qty         int      `bson:"qty" json:"qty"`
}

// MergeItem ajoute l'article au panier. Si le produit y figure déjà,
// la quantité entrante s'ajoute à l'existante (jamais de doublon par produit).
func (c *Cart) MergeItem(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductName == item.ProductName {
			c.Items[i].Qty += item.Qty
			return
		}
	}
	c.Items = append(c.Items, item)
}

// RemoveItem retire toutes les entrées portant ce nom de produit.
func (c *Cart) RemoveItem(productName string) {
	kept := make([]CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.ProductName != productName {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}

// SetQty remplace la quantité de l'article (valeur absolue, pas d'addition).
// Retourne l'article mis à jour, ou false s'il est absent du panier.
func (c *Cart) SetQty(productName string, qty int) (*CartItem, bool) {
	for i := range c.Items {
		if c.Items[i].ProductName == productName {
			c.Items[i].Qty = qty
			return &c.Items[i], true
		}
	}
	return nil, false
}

// FindItems retourne toutes les entrées portant ce nom de produit.
func (c *Cart) FindItems(productName string) []CartItem {
	var found []CartItem
	for _, item := range c.Items {
		if item.ProductName == productName {
			found = append(found, item)
		}
	}
	return found
}
