package entity

import "time"

// Rôles valides pour User.
const (
	RoleAdmin        = "admin"
	RoleGestionnaire = "gestionnaire"
	RoleVendeur      = "vendeur"
)

// User représente un utilisateur du back-office.
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, jamais en clair dans le domaine après persistance
	Name         string
	Role         string // admin, gestionnaire, vendeur
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
