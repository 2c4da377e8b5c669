// Package handlers contient la couche route : un dispatcher mince au-dessus
// du modèle de domaine (catalogue, panier, checkout, comptes, commandes).
// Toute la validation de quantité passe par le package validate avant de
// toucher au panier.
package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"bookstore_back_end/internal/store"
)

const sessionName = "bookstore_session"

// Handler porte l'état injecté dans la couche route.
type Handler struct {
	store    *store.Store
	sessions *sessions.CookieStore
}

func New(st *store.Store, sessionSecret []byte) *Handler {
	cookieStore := sessions.NewCookieStore(sessionSecret)
	cookieStore.MaxAge(86400 * 30)
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
	return &Handler{store: st, sessions: cookieStore}
}
