package database

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// --- Variables Globales ---
var (
	Client *mongo.Client
	DB     *mongo.Database
)

// ConnectDatabase initialise la connexion MongoDB et les index
func ConnectDatabase() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("❌ Échec connexion MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("❌ MongoDB injoignable: %v", err)
	}

	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "shopcart"
	}

	Client = client
	DB = client.Database(dbName)

	if err := ensureIndexes(ctx); err != nil {
		log.Fatalf("❌ Échec création des index: %v", err)
	}

	log.Println("✅ MongoDB connecté (base:", dbName+")")
}

// ensureIndexes crée les index d'unicité.
// users.email et products.product_name reprennent le schéma d'origine ;
// carts.email garantit un seul panier par email au niveau du store.
func ensureIndexes(ctx context.Context) error {
	unique := []struct {
		collection string
		field      string
	}{
		{"users", "email"},
		{"products", "product_name"},
		{"carts", "email"},
	}

	for _, idx := range unique {
		_, err := DB.Collection(idx.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: idx.field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Disconnect ferme la connexion MongoDB
func Disconnect() {
	if Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Client.Disconnect(ctx); err != nil {
		log.Printf("⚠️ Erreur fermeture MongoDB: %v", err)
	}
}
