package user

import (
	"context"
	"errors"
	"net/http"
	"time"

	"shopcart_backend/internal/database"
	"shopcart_backend/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func cartCollection() *mongo.Collection {
	return database.DB.Collection("carts")
}

func saveCartItems(ctx context.Context, cart models.Cart) error {
	_, err := cartCollection().UpdateOne(ctx,
		bson.M{"_id": cart.ID},
		bson.M{"$set": bson.M{"items": cart.Items}},
	)
	return err
}

//
// 🟢 POST /api/users/addcart
// Lecture-modification-écriture sans verrou : deux ajouts concurrents sur le
// même panier peuvent se perdre, comme dans le système décrit.
//
func AddToCart(c *gin.Context) {
	var input struct {
		Email       string   `json:"email" binding:"required,email"`
		ProductName string   `json:"product_name" binding:"required"`
		Price       string   `json:"price"`
		Rating      string   `json:"rating"`
		Features    []string `json:"features"`
		ImageLink   string   `json:"image_link"`
		Qty         int      `json:"qty" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec ajout au panier", "details": err.Error()})
		return
	}

	item := models.CartItem{
		ProductName: input.ProductName,
		Price:       input.Price,
		Rating:      input.Rating,
		Features:    input.Features,
		ImageLink:   input.ImageLink,
		Qty:         input.Qty,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var cart models.Cart
	err := cartCollection().FindOne(ctx, bson.M{"email": input.Email}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		cart = models.Cart{
			ID:    primitive.NewObjectID(),
			Email: input.Email,
			Items: []models.CartItem{item},
		}
		if _, err := cartCollection().InsertOne(ctx, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec ajout au panier", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, cart)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec ajout au panier", "details": err.Error()})
		return
	}

	cart.MergeItem(item)

	if err := saveCartItems(ctx, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec ajout au panier", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cart)
}

// POST /api/users/getcart
func GetCart(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec récupération du panier", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var cart models.Cart
	err := cartCollection().FindOne(ctx, bson.M{"email": input.Email}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Panier introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec récupération du panier", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cart.Items)
}

// POST /api/users/itemexists
func ItemExists(c *gin.Context) {
	var input struct {
		Email       string `json:"email" binding:"required,email"`
		ProductName string `json:"product_name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec récupération du panier", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var cart models.Cart
	err := cartCollection().FindOne(ctx, bson.M{"email": input.Email}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Panier introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec récupération du panier", "details": err.Error()})
		return
	}

	items := cart.FindItems(input.ProductName)
	if len(items) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article introuvable dans le panier"})
		return
	}

	c.JSON(http.StatusOK, items)
}

//
// ❌ DELETE /api/users/deletecart
// 200 avec le panier même si aucun article ne correspondait ; 404 seulement
// si le panier n'existe pas.
//
func RemoveFromCart(c *gin.Context) {
	var input struct {
		Email       string `json:"email" binding:"required,email"`
		ProductName string `json:"product_name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec suppression de l'article", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var cart models.Cart
	err := cartCollection().FindOne(ctx, bson.M{"email": input.Email}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Panier introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec suppression de l'article", "details": err.Error()})
		return
	}

	cart.RemoveItem(input.ProductName)

	if err := saveCartItems(ctx, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec suppression de l'article", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cart)
}

//
// 🧹 DELETE /api/users/deleteall — supprime le document panier entier
//
func ClearCart(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec vidage du panier", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := cartCollection().DeleteOne(ctx, bson.M{"email": input.Email})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec vidage du panier", "details": err.Error()})
		return
	}

	// Accusé de suppression brut, pas le panier
	c.JSON(http.StatusOK, gin.H{
		"acknowledged":  true,
		"deleted_count": res.DeletedCount,
	})
}

// PUT /api/users/qty — remplace la quantité (valeur absolue)
func UpdateQuantity(c *gin.Context) {
	var input struct {
		Email       string `json:"email" binding:"required,email"`
		ProductName string `json:"product_name" binding:"required"`
		Qty         int    `json:"qty"` // 0 est une valeur légitime, pas de required
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour quantité", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var cart models.Cart
	err := cartCollection().FindOne(ctx, bson.M{"email": input.Email}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Panier introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour quantité", "details": err.Error()})
		return
	}

	item, found := cart.SetQty(input.ProductName, input.Qty)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article introuvable dans le panier"})
		return
	}

	if err := saveCartItems(ctx, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour quantité", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}
