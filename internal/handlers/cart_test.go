package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBooks(t *testing.T) {
	cl, _ := newClient(t)

	w := cl.get("/api/books")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "The Great Gatsby")
	assert.Contains(t, w.Body.String(), "1984")
	assert.Contains(t, w.Body.String(), "I Ching")
	assert.Contains(t, w.Body.String(), "Moby Dick")
}

func TestAddToCartValidBook(t *testing.T) {
	cl, _ := newClient(t)

	w := cl.postForm("/api/cart/add", url.Values{
		"title":    {"The Great Gatsby"},
		"quantity": {"2"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body(t, w)["message"], "added to cart!")
	assert.Equal(t, 2, cl.cartTotalItems())
}

func TestAddToCartInvalidBook(t *testing.T) {
	cl, _ := newClient(t)

	w := cl.postForm("/api/cart/add", url.Values{
		"title":    {"Nonexistent Book"},
		"quantity": {"1"},
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Book not found!", body(t, w)["error"])
	assert.Equal(t, 0, cl.cartTotalItems())
}

func TestAddToCartDefaultQuantity(t *testing.T) {
	cl, _ := newClient(t)

	w := cl.postForm("/api/cart/add", url.Values{"title": {"1984"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, cl.cartTotalItems())
}

func TestAddToCartQuantityValidation(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		message  string
	}{
		{"chaîne non numérique", "invalid", "Invalid quantity. Please enter a valid number."},
		{"décimale", "2.5", "Invalid quantity. Please enter a valid number."},
		{"négative", "-5", "Quantity must be a positive number"},
		{"zéro", "0", "Quantity must be a positive number"},
		{"excessive", "999", "Quantity cannot exceed 100 items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl, _ := newClient(t)

			w := cl.postForm("/api/cart/add", url.Values{
				"title":    {"The Great Gatsby"},
				"quantity": {tt.quantity},
			})
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.message, body(t, w)["error"])
			assert.Equal(t, 0, cl.cartTotalItems(), "le panier ne doit pas bouger")
		})
	}
}

func TestUpdateCartQuantity(t *testing.T) {
	cl, _ := newClient(t)
	cl.addGatsby()

	w := cl.postForm("/api/cart/update", url.Values{
		"title":    {"The Great Gatsby"},
		"quantity": {"5"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Cart updated!", body(t, w)["message"])
	assert.Equal(t, 5, cl.cartTotalItems())
}

func TestUpdateCartZeroQuantityRemovesItem(t *testing.T) {
	cl, _ := newClient(t)
	cl.addGatsby()

	w := cl.postForm("/api/cart/update", url.Values{
		"title":    {"The Great Gatsby"},
		"quantity": {"0"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, cl.cartTotalItems())
}

func TestUpdateCartQuantityValidation(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		message  string
	}{
		{"chaîne non numérique", "abc", "Invalid quantity. Please enter a valid number."},
		{"décimale", "2.5", "Invalid quantity. Please enter a valid number."},
		{"absente", "", "Invalid quantity. Please enter a valid number."},
		{"négative", "-1", "Quantity cannot be negative"},
		{"excessive", "999", "Quantity cannot exceed 100 items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl, _ := newClient(t)
			cl.addGatsby()

			w := cl.postForm("/api/cart/update", url.Values{
				"title":    {"The Great Gatsby"},
				"quantity": {tt.quantity},
			})
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.message, body(t, w)["error"])
			assert.Equal(t, 2, cl.cartTotalItems(), "la quantité d'origine doit rester")
		})
	}
}

func TestUpdateCartUnknownTitle(t *testing.T) {
	cl, _ := newClient(t)

	w := cl.postForm("/api/cart/update", url.Values{
		"title":    {"Not Here"},
		"quantity": {"2"},
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Book not in cart!", body(t, w)["error"])
}

func TestRemoveFromCart(t *testing.T) {
	cl, _ := newClient(t)
	cl.addGatsby()

	w := cl.postForm("/api/cart/remove", url.Values{"title": {"The Great Gatsby"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, cl.cartTotalItems())
}

func TestClearCart(t *testing.T) {
	cl, _ := newClient(t)
	cl.addGatsby()
	cl.postForm("/api/cart/add", url.Values{"title": {"1984"}})

	w := cl.postForm("/api/cart/clear", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Cart cleared!", body(t, w)["message"])
	assert.Equal(t, 0, cl.cartTotalItems())
}

func TestCartPersistsAcrossRequests(t *testing.T) {
	cl, _ := newClient(t)
	cl.addGatsby()

	// Le cookie de session ramène au même panier à la requête suivante.
	assert.Equal(t, 2, cl.cartTotalItems())
}

func TestCartsAreIsolatedPerClient(t *testing.T) {
	cl, _ := newClient(t)
	cl.addGatsby()

	other, _ := newClient(t)
	assert.Equal(t, 0, other.cartTotalItems())
}
