package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookstore_back_end/internal/models"
)

// CartSession garantit qu'un identifiant de panier suit le client via le
// cookie de session. Le panier lui-même vit dans le Store, le cookie ne
// transporte que son identifiant.
func (h *Handler) CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, _ := h.sessions.Get(c.Request, sessionName)

		cartID, ok := session.Values["cart_id"].(string)
		if !ok || cartID == "" {
			cartID = uuid.New().String()
			session.Values["cart_id"] = cartID
			if err := session.Save(c.Request, c.Writer); err != nil {
				log.Printf("⚠️ Erreur sauvegarde session: %v", err)
			}
		}

		c.Set("cart_id", cartID)
		c.Next()
	}
}

// cart renvoie le panier de la session courante.
func (h *Handler) cart(c *gin.Context) *models.Cart {
	return h.store.Cart(c.GetString("cart_id"))
}
