package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

//
// 🟢 GET /api/orders/:id
//
// Page de confirmation : la commande telle que figée au checkout.
func (h *Handler) OrderConfirmation(c *gin.Context) {
	order, ok := h.store.Orders.Find(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

//
// 🟢 GET /api/orders/:id/qr
//
// QR code pointant vers la confirmation, pour retrouver sa commande
// depuis un mobile.
func (h *Handler) OrderQR(c *gin.Context) {
	orderID := c.Param("id")
	if _, ok := h.store.Orders.Find(orderID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	confirmURL := fmt.Sprintf("http://%s/api/orders/%s", c.Request.Host, orderID)
	png, err := qrcode.Encode(confirmURL, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

//
// 🟢 GET /api/account/orders
//
// Les commandes du compte connecté, la plus récente d'abord.
func (h *Handler) MyOrders(c *gin.Context) {
	email := c.GetString("email")
	orders := h.store.Orders.ByEmail(email)
	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"total":  len(orders),
	})
}
