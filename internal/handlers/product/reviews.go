package product

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

func reviewCollection() *mongo.Collection {
	return database.DB.Collection("reviews")
}

// POST /api/users/review
// Un document d'avis par produit ; un même nom ne publie qu'une fois (400).
func CreateReview(c *gin.Context) {
	var input struct {
		ProductName string  `json:"product_name" binding:"required"`
		Name        string  `json:"name" binding:"required"`
		Comments    string  `json:"comments" binding:"required"`
		Rating      float64 `json:"rating" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	review := models.Review{
		Name:     input.Name,
		Comments: input.Comments,
		Rating:   input.Rating,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var doc models.ProductReview
	err := reviewCollection().FindOne(ctx, bson.M{"product_name": input.ProductName}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		doc = models.ProductReview{
			ID:          primitive.NewObjectID(),
			ProductName: input.ProductName,
			Reviews:     []models.Review{review},
		}
		if _, err := reviewCollection().InsertOne(ctx, doc); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec ajout de l'avis"})
			return
		}
		c.JSON(http.StatusCreated, doc)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec ajout de l'avis"})
		return
	}

	if err := doc.AddReview(review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err = reviewCollection().UpdateOne(ctx,
		bson.M{"_id": doc.ID},
		bson.M{"$set": bson.M{"reviews": doc.Reviews}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec ajout de l'avis"})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// POST /api/users/getreview
// Le filtre du corps est transmis tel quel au store : on peut chercher par
// n'importe quel champ du document d'avis.
func GetReviews(c *gin.Context) {
	filter := bson.M{}
	if err := c.ShouldBindJSON(&filter); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec récupération des avis"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var doc models.ProductReview
	err := reviewCollection().FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// findOne sans résultat répond null, pas 404
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec récupération des avis"})
		return
	}

	c.JSON(http.StatusOK, doc)
}
