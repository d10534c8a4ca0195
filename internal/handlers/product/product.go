package product

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"shopcart_backend/internal/cache"
	"shopcart_backend/internal/database"
	"shopcart_backend/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

//
// --- MONGO COLLECTION ---
//
func productCollection() *mongo.Collection {
	if database.DB == nil {
		panic("❌ base MongoDB non initialisée — database.ConnectDatabase() a-t-il été appelé ?")
	}
	return database.DB.Collection("products")
}

//
// --- HANDLERS ---
//

// 🟢 POST /api/users/data — seed du catalogue
// L'index unique sur product_name rejette les doublons ; l'erreur du driver
// remonte brute en 500.
func CreateProduct(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p.OID = primitive.NewObjectID()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := productCollection().InsertOne(ctx, p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Invalidation du catalogue : une création rendrait le listing périmé
	if err := cache.Shared.Delete(ctx, cache.CatalogKey); err != nil {
		log.Printf("⚠️ Échec invalidation cache catalogue: %v", err)
	}

	c.JSON(http.StatusOK, p)
}

// GET /api/users/data — listing servi depuis le cache (expiry 300s)
// Le payload mis en cache est resservi tel quel : deux listings dans la
// fenêtre renvoient des octets identiques.
func GetAllProducts(c *gin.Context) {
	ctx := context.Background()

	if data, err := cache.Shared.Get(ctx, cache.CatalogKey); err == nil {
		c.Data(http.StatusOK, "application/json; charset=utf-8", data)
		return
	}

	cursor, err := productCollection().Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	payload, err := json.Marshal(products)
	if err != nil {
		c.JSON(http.StatusOK, products)
		return
	}

	if err := cache.Shared.Set(ctx, cache.CatalogKey, payload, cache.CatalogTTL); err != nil {
		log.Printf("⚠️ Échec écriture cache catalogue: %v", err)
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
