package store

import (
	"errors"
	"sync"

	"bookstore_back_end/internal/models"
)

// ErrEmailExists : un compte existe déjà pour cet email.
var ErrEmailExists = errors.New("an account with this email already exists")

// UserStore est le registre des comptes, indexé par email (sensible à la
// casse, tel que stocké). Les comptes ne sont jamais supprimés.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]*models.User)}
}

// Register crée un compte. Échoue si l'email est déjà pris.
func (us *UserStore) Register(email, password, name, address string) (models.User, error) {
	us.mu.Lock()
	defer us.mu.Unlock()
	if _, ok := us.users[email]; ok {
		return models.User{}, ErrEmailExists
	}
	user := &models.User{Email: email, Password: password, Name: name, Address: address}
	us.users[email] = user
	return *user, nil
}

// Authenticate compare le mot de passe en clair, contrat assumé de la démo.
func (us *UserStore) Authenticate(email, password string) (models.User, bool) {
	us.mu.RLock()
	defer us.mu.RUnlock()
	user, ok := us.users[email]
	if !ok || user.Password != password {
		return models.User{}, false
	}
	return *user, true
}

// Get renvoie le compte associé à un email, s'il existe.
func (us *UserStore) Get(email string) (models.User, bool) {
	us.mu.RLock()
	defer us.mu.RUnlock()
	user, ok := us.users[email]
	if !ok {
		return models.User{}, false
	}
	return *user, true
}

// ProfileUpdate liste les champs modifiables d'un compte.
// Un pointeur nil = champ inchangé.
type ProfileUpdate struct {
	Name        *string
	Address     *string
	NewPassword *string
}

// UpdateProfile applique les champs fournis. Renvoie false si le compte
// n'existe pas.
func (us *UserStore) UpdateProfile(email string, update ProfileUpdate) bool {
	us.mu.Lock()
	defer us.mu.Unlock()
	user, ok := us.users[email]
	if !ok {
		return false
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Address != nil {
		user.Address = *update.Address
	}
	if update.NewPassword != nil {
		user.Password = *update.NewPassword
	}
	return true
}
