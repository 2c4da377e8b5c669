package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore_back_end/internal/store"
	"bookstore_back_end/internal/utils"
)

// ================== AUTH LOCALE ==================

//
// 🟢 POST /api/auth/register
//
func (h *Handler) Register(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	name := c.PostForm("name")
	address := c.PostForm("address")

	if email == "" || password == "" || name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all required fields"})
		return
	}

	user, err := h.store.Users.Register(email, password, name, address)
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	log.Printf("✅ Compte créé: %s", user.Email)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully!",
		"token":   token,
		"email":   user.Email,
		"name":    user.Name,
	})
}

//
// 🟢 POST /api/auth/login
//
func (h *Handler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, ok := h.store.Users.Authenticate(email, password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in successfully!",
		"token":   token,
		"email":   user.Email,
		"name":    user.Name,
	})
}

//
// 🟢 GET /api/auth/logout
//
// Le token vit côté client, rien à invalider côté serveur.
func (h *Handler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully!"})
}

//
// 🟢 GET /api/account
//
func (h *Handler) Account(c *gin.Context) {
	email := c.GetString("email")

	user, ok := h.store.Users.Get(email)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Compte introuvable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":   user.Email,
		"name":    user.Name,
		"address": user.Address,
	})
}

//
// 🟢 POST /api/account/update
//
// Met à jour le profil ou le mot de passe du compte connecté.
func (h *Handler) UpdateProfile(c *gin.Context) {
	email := c.GetString("email")

	if newPassword := c.PostForm("new_password"); newPassword != "" {
		if !h.store.Users.UpdateProfile(email, store.ProfileUpdate{NewPassword: &newPassword}) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Compte introuvable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully!"})
		return
	}

	update := store.ProfileUpdate{}
	if name := c.PostForm("name"); name != "" {
		update.Name = &name
	}
	if address := c.PostForm("address"); address != "" {
		update.Address = &address
	}

	if !h.store.Users.UpdateProfile(email, update) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Compte introuvable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully!"})
}
