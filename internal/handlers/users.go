package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/guardapp/contacts-api/internal/crypto"
	"github.com/guardapp/contacts-api/internal/store"
	"github.com/guardapp/contacts-api/internal/token"
	"github.com/guardapp/contacts-api/internal/utils"
)

type UserHandler struct {
	users  *store.Users
	tokens *token.Service
	hasher *crypto.Hasher
	log    *slog.Logger
}

func NewUserHandler(users *store.Users, tokens *token.Service, hasher *crypto.Hasher, log *slog.Logger) *UserHandler {
	return &UserHandler{users: users, tokens: tokens, hasher: hasher, log: log}
}

type createUserReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createUserResp struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Create registers a user. The response never carries the password hash.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.JSONError(w, http.StatusBadRequest, "Nome, email e senha são obrigatórios")
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		h.log.Error("erro ao criar usuário", "err", err)
		utils.JSONError(w, http.StatusInternalServerError, "Erro ao criar usuário")
		return
	}

	user, err := h.users.Create(r.Context(), req.Name, req.Email, hash)
	if err != nil {
		// a duplicate email lands here too and stays indistinguishable
		// from any other store failure
		h.log.Error("erro ao criar usuário", "err", err)
		utils.JSONError(w, http.StatusInternalServerError, "Erro ao criar usuário")
		return
	}

	utils.JSON(w, http.StatusOK, createUserResp{ID: user.ID, Name: user.Name, Email: user.Email})
}

// Login checks credentials and returns a bearer token.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if req.Email == "" || req.Password == "" {
		utils.JSONError(w, http.StatusBadRequest, "Email e senha são obrigatórios")
		return
	}

	user, err := h.users.FindByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.JSONError(w, http.StatusBadRequest, "Usuário não encontrado")
			return
		}
		h.log.Error("erro ao buscar usuário", "err", err)
		utils.JSONError(w, http.StatusInternalServerError, "Erro ao fazer login")
		return
	}

	if !h.hasher.Compare(req.Password, user.Password) {
		utils.JSONError(w, http.StatusBadRequest, "Senha incorreta")
		return
	}

	tok, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		h.log.Error("erro ao gerar token", "err", err)
		utils.JSONError(w, http.StatusInternalServerError, "Erro ao fazer login")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"access_token": tok})
}
