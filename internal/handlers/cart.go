package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore_back_end/internal/catalog"
	"bookstore_back_end/internal/validate"
)

// quantityMessage traduit une erreur de validation en message utilisateur.
func quantityMessage(err error) string {
	switch {
	case errors.Is(err, validate.ErrNotPositive):
		return "Quantity must be a positive number"
	case errors.Is(err, validate.ErrNegative):
		return "Quantity cannot be negative"
	case errors.Is(err, validate.ErrTooLarge):
		return fmt.Sprintf("Quantity cannot exceed %d items", validate.MaxQuantity)
	default:
		// ErrNotANumber, ErrMissing
		return "Invalid quantity. Please enter a valid number."
	}
}

//
// 🟢 GET /api/cart
//
func (h *Handler) GetCart(c *gin.Context) {
	cart := h.cart(c)
	c.JSON(http.StatusOK, gin.H{
		"items":       cart.Items(),
		"total_items": cart.TotalItems(),
		"total_price": cart.TotalPrice(),
	})
}

//
// 🟢 POST /api/cart/add
//
func (h *Handler) AddToCart(c *gin.Context) {
	title := c.PostForm("title")

	book, ok := catalog.FindByTitle(title)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found!"})
		return
	}

	// Quantité absente → 1 par défaut.
	quantity, err := validate.AddQuantity(c.PostForm("quantity"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": quantityMessage(err)})
		return
	}

	cart := h.cart(c)
	cart.AddBook(book, quantity)
	h.store.CartChanged(c.GetString("cart_id"))

	c.JSON(http.StatusOK, gin.H{
		"message":     fmt.Sprintf("%s added to cart!", book.Title),
		"total_items": cart.TotalItems(),
	})
}

//
// 🟢 POST /api/cart/update
//
func (h *Handler) UpdateCart(c *gin.Context) {
	title := c.PostForm("title")

	// Zéro est accepté ici : le panier supprime la ligne.
	quantity, err := validate.UpdateQuantity(c.PostForm("quantity"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": quantityMessage(err)})
		return
	}

	cart := h.cart(c)
	if !cart.UpdateQuantity(title, quantity) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not in cart!"})
		return
	}
	h.store.CartChanged(c.GetString("cart_id"))

	c.JSON(http.StatusOK, gin.H{
		"message":     "Cart updated!",
		"total_items": cart.TotalItems(),
		"total_price": cart.TotalPrice(),
	})
}

//
// ❌ POST /api/cart/remove
//
func (h *Handler) RemoveFromCart(c *gin.Context) {
	title := c.PostForm("title")

	cart := h.cart(c)
	cart.RemoveBook(title)
	h.store.CartChanged(c.GetString("cart_id"))

	c.JSON(http.StatusOK, gin.H{
		"message":     fmt.Sprintf("%s removed from cart!", title),
		"total_items": cart.TotalItems(),
	})
}

//
// 🧹 POST /api/cart/clear
//
func (h *Handler) ClearCart(c *gin.Context) {
	cart := h.cart(c)
	cart.Clear()
	h.store.CartChanged(c.GetString("cart_id"))

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared!"})
}
