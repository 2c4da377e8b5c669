package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore_back_end/internal/models"
	"bookstore_back_end/internal/store"
)

//
// 🟢 GET /api/checkout
//
// Prépare la page de checkout : contenu du panier et sous-total.
func (h *Handler) CheckoutSummary(c *gin.Context) {
	cart := h.cart(c)
	if cart.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty!"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":       cart.Items(),
		"total_items": cart.TotalItems(),
		"subtotal":    cart.TotalPrice(),
	})
}

//
// 🟢 POST /api/checkout
//
// Valide le formulaire, crée la commande depuis le panier et vide celui-ci.
// En cas d'échec de validation, rien n'est créé et le panier reste intact.
func (h *Handler) ProcessCheckout(c *gin.Context) {
	customer := models.CustomerInfo{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Address: c.PostForm("address"),
		City:    c.PostForm("city"),
		Zip:     c.PostForm("zip_code"),
	}
	payment := models.PaymentInfo{
		Method:     c.PostForm("payment_method"),
		CardNumber: c.PostForm("card_number"),
		Expiry:     c.PostForm("expiry_date"),
		CVV:        c.PostForm("cvv"),
	}
	discountCode := c.PostForm("discount_code")

	cart := h.cart(c)
	order, err := h.store.Orders.Create(cart, customer, payment, discountCode)
	if err != nil {
		var missing *store.MissingFieldError
		switch {
		case errors.Is(err, store.ErrCartEmpty):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty!"})
		case errors.As(err, &missing):
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Please fill in the %s field", missing.Field)})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création de la commande"})
		}
		return
	}

	// Les champs de paiement sont acceptés tels quels : la commande passe
	// directement en "confirmed".
	h.store.Orders.SetStatus(order.ID, models.OrderStatusConfirmed)
	order.Status = models.OrderStatusConfirmed
	h.store.CartChanged(c.GetString("cart_id"))

	log.Printf("✅ Commande %s créée ($%s)", order.ID, order.Total.StringFixed(2))

	c.JSON(http.StatusOK, gin.H{
		"message":  "Your order has been successfully processed!",
		"order_id": order.ID,
		"total":    order.Total,
		"order":    order,
	})
}
