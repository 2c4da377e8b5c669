package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"bookstore_back_end/internal/catalog"
	"bookstore_back_end/internal/config"
	"bookstore_back_end/internal/handlers"
	"bookstore_back_end/internal/routes"
	"bookstore_back_end/internal/store"
)

func main() {
	config.Load()

	st := store.New()
	seedDemoUser(st)

	log.Printf("📚 Catalogue chargé: %d livres", len(catalog.List()))

	h := handlers.New(st, config.SessionSecret())

	r := gin.Default()
	routes.RegisterRoutes(r, h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur librairie lancé sur le port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Impossible de démarrer le serveur:", err)
	}
}

// seedDemoUser crée le compte de démonstration attendu par le front.
func seedDemoUser(st *store.Store) {
	if _, err := st.Users.Register("demo@bookstore.com", "demo123", "Demo User", "123 Demo Street"); err != nil {
		log.Printf("⚠️ Compte démo non créé: %v", err)
		return
	}
	log.Println("✅ Compte démo créé: demo@bookstore.com")
}
