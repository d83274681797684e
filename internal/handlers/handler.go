// Package handlers is the controller layer: each handler validates input,
// delegates to the store or token service, and maps the result to an HTTP
// response. Client-facing messages follow the product's Portuguese copy.
package handlers

import (
	"log/slog"

	"github.com/guardapp/contacts-api/internal/crypto"
	"github.com/guardapp/contacts-api/internal/store"
	"github.com/guardapp/contacts-api/internal/token"
)

type Handler struct {
	Users    *UserHandler
	Contacts *ContactHandler
}

// New wires all handlers from their dependencies. Construction is explicit:
// everything a handler needs arrives here, nothing is read from globals.
func New(users *store.Users, contacts *store.Contacts, tokens *token.Service, hasher *crypto.Hasher, log *slog.Logger) *Handler {
	return &Handler{
		Users:    NewUserHandler(users, tokens, hasher, log),
		Contacts: NewContactHandler(contacts, log),
	}
}
