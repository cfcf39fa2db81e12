package http

import (
	"storefront-service/internal/domain"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type RootResponse struct {
	Message  string   `json:"message"`
	Version  string   `json:"version"`
	Features []string `json:"features"`
}

type AuthResponse struct {
	Message string          `json:"message"`
	Token   string          `json:"token"`
	User    domain.Identity `json:"user"`
	Demo    bool            `json:"demo,omitempty"`
}

type MeResponse struct {
	User *domain.User `json:"user"`
}

type SeedCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

type SeedResponse struct {
	Message     string           `json:"message"`
	Token       string           `json:"token,omitempty"`
	User        *domain.Identity `json:"user,omitempty"`
	Credentials SeedCredentials  `json:"credentials"`
}

type ProductResponse struct {
	Message string          `json:"message"`
	Product *domain.Product `json:"product"`
	Demo    bool            `json:"demo,omitempty"`
}

type OrderResponse struct {
	Message string        `json:"message"`
	Order   *domain.Order `json:"order"`
	Demo    bool          `json:"demo,omitempty"`
}

type MessageCreatedResponse struct {
	Message string          `json:"message"`
	Data    *domain.Message `json:"data"`
	Demo    bool            `json:"demo,omitempty"`
}
