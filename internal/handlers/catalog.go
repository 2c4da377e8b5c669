package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore_back_end/internal/catalog"
)

//
// 🟢 GET /api/books
//
func (h *Handler) ListBooks(c *gin.Context) {
	books := catalog.List()
	c.JSON(http.StatusOK, gin.H{
		"books": books,
		"total": len(books),
	})
}

//
// 🟢 GET /api/books/:title
//
func (h *Handler) GetBook(c *gin.Context) {
	book, ok := catalog.FindByTitle(c.Param("title"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found!"})
		return
	}
	c.JSON(http.StatusOK, book)
}
