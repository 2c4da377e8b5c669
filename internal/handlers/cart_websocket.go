package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

// CartWebSocket gère la synchronisation temps réel du panier : à chaque
// mutation, l'état complet est repoussé au client.
func (h *Handler) CartWebSocket(c *gin.Context) {
	cartID := c.GetString("cart_id")

	// Upgrade vers WebSocket
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	events, cancel := h.store.SubscribeCart(cartID)
	defer cancel()

	// Message de connexion
	conn.WriteJSON(gin.H{
		"type":    "connected",
		"message": "Synchronisation panier activée",
	})

	snapshot := func() gin.H {
		cart := h.store.Cart(cartID)
		return gin.H{
			"type":        "cart_updated",
			"items":       cart.Items(),
			"total_items": cart.TotalItems(),
			"total_price": cart.TotalPrice(),
		}
	}

	// Boucle d'écoute
	for {
		select {
		case <-events:
			if err := conn.WriteJSON(snapshot()); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
				return
			}
		case <-time.After(30 * time.Second):
			// Ping pour garder la connexion active
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
