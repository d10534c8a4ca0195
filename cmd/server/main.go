package main

import (
	"log"
	"os"

	"shopcart_backend/internal/cache"
	"shopcart_backend/internal/config"
	"shopcart_backend/internal/database"
	"shopcart_backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	database.ConnectDatabase()
	defer database.Disconnect()

	if err := cache.Init(); err != nil {
		log.Fatalf("❌ Échec initialisation cache: %v", err)
	}

	r := gin.Default()
	r.Use(cors.Default())
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Println("🚀 Serveur Shopcart lancé sur le port", port)
	r.Run(":" + port)
}
