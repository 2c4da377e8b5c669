package models

// User est un compte client, indexé par email. Le mot de passe est stocké
// et comparé en clair : la sécurité d'authentification est hors périmètre
// de cette démo.
type User struct {
	Email    string `json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
}
