package auth

import (
	"fmt"
)

// Role of an account on the platform.
type Role string

const (
	Customer        Role = "CUSTOMER"
	RestaurantOwner Role = "RESTAURANT_OWNER"
	DeliveryAgent   Role = "DELIVERY_AGENT"
	Admin           Role = "ADMIN"
)

// Roles lists every role the platform knows, in no particular order of
// privilege.
func Roles() []Role {
	return []Role{Customer, RestaurantOwner, DeliveryAgent, Admin}
}

// ParseRole converts a string to Role.
//
// It returns an error for strings which are not a known role.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles() {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role: %s", s)
}

func (r Role) String() string {
	return string(r)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password" yaml:"password"`
	Phone    string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Address  string `json:"address,omitempty" yaml:"address,omitempty"`
	Role     Role   `json:"role" yaml:"role"`
}

// Identity is what the server returns on successful login/registration,
// and from GET /auth/me.
type Identity struct {
	Token  string `json:"token,omitempty"`
	UserId int64  `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

func (i Identity) Equal(o Identity) bool {
	return i.Token == o.Token &&
		i.UserId == o.UserId &&
		i.Name == o.Name &&
		i.Email == o.Email &&
		i.Role == o.Role
}
