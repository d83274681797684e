package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/guardapp/contacts-api/internal/middleware"
	"github.com/guardapp/contacts-api/internal/store"
	"github.com/guardapp/contacts-api/internal/utils"
)

type ContactHandler struct {
	contacts *store.Contacts
	log      *slog.Logger
}

func NewContactHandler(contacts *store.Contacts, log *slog.Logger) *ContactHandler {
	return &ContactHandler{contacts: contacts, log: log}
}

// Find looks a contact up by the numeric ?id= query parameter. An absent id
// and a present-but-missing row are both client errors here.
func (h *ContactHandler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "ID inválido")
		return
	}

	contact, err := h.contacts.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.JSONError(w, http.StatusBadRequest, "Contato não encontrado")
			return
		}
		h.log.Error("erro ao buscar contato", "err", err)
		utils.JSONError(w, http.StatusInternalServerError, "Erro ao buscar contato")
		return
	}

	utils.JSON(w, http.StatusOK, contact)
}

// Create requires all four fields; the image arrives via the upload
// middleware, which has already written it to disk.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	email := r.FormValue("email")
	telephone := r.FormValue("telephone")
	imagePath, hasFile := middleware.FileFromContext(r.Context())

	if name == "" || email == "" || telephone == "" || !hasFile {
		utils.JSONError(w, http.StatusBadRequest, "Nome, email, telefone e imagem são obrigatórios")
		return
	}

	contact, err := h.contacts.Create(r.Context(), name, email, telephone, imagePath)
	if err != nil {
		h.log.Error("erro ao criar contato", "err", err)
		utils.JSONError(w, http.StatusInternalServerError, "Erro ao criar contato")
		return
	}

	utils.JSON(w, http.StatusOK, contact)
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contacts.FindAll(r.Context())
	if err != nil {
		h.log.Error("erro ao buscar contatos", "err", err)
		utils.JSONError(w, http.StatusInternalServerError, "Erro ao buscar contatos")
		return
	}

	utils.JSON(w, http.StatusOK, contacts)
}

// Update applies a partial change: any subset of name/email/telephone plus an
// optional replacement image, at least one of them required.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "ID inválido")
		return
	}

	patch := store.ContactPatch{}
	if v := r.FormValue("name"); v != "" {
		patch.Name = &v
	}
	if v := r.FormValue("email"); v != "" {
		patch.Email = &v
	}
	if v := r.FormValue("telephone"); v != "" {
		patch.Telephone = &v
	}
	if path, ok := middleware.FileFromContext(r.Context()); ok {
		patch.Image = &path
	}

	if patch.Name == nil && patch.Email == nil && patch.Telephone == nil && patch.Image == nil {
		utils.JSONError(w, http.StatusBadRequest, "Pelo menos um campo (nome, email ou telefone) deve ser fornecido")
		return
	}

	contact, err := h.contacts.Update(r.Context(), id, patch)
	if err != nil {
		// not-found is not singled out: the caller sees the same generic
		// failure as for any other store error
		h.log.Error("erro ao atualizar contato", "err", err)
		utils.JSONError(w, http.StatusInternalServerError, "Erro ao atualizar contato")
		return
	}

	utils.JSON(w, http.StatusOK, contact)
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.contacts.Delete(r.Context(), id); err != nil {
		h.log.Error("erro ao excluir contato", "err", err)
		utils.JSONError(w, http.StatusInternalServerError, "Erro ao excluir contato")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Contato excluído com sucesso"})
}
