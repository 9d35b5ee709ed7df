package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"rentacar/internal/auth"
	"rentacar/internal/entities"
	httperrors "rentacar/internal/errors"
	"rentacar/internal/repository"
	"rentacar/internal/service"
)

// maxDocumentUploadBytes caps a single document upload (both sides).
const maxDocumentUploadBytes = 10 << 20

type ProfileHandler struct {
	Repo    *repository.ProfileRepository
	Storage *service.StorageService
}

func NewProfileHandler(repo *repository.ProfileRepository, storage *service.StorageService) *ProfileHandler {
	return &ProfileHandler{Repo: repo, Storage: storage}
}

func (h *ProfileHandler) requireUser(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		httperrors.WriteJSON(w, httperrors.Unauthorized("Unauthorized"))
	}
	return userID, ok
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	profile, err := h.Repo.GetProfile(userID)
	if err != nil {
		httperrors.WriteJSON(w, httperrors.NotFound("profile not found"))
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	var req ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest("invalid request body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest(validationMessage(err)))
		return
	}

	profile, err := h.Repo.UpdateProfile(userID, req.Name, req.Phone, req.Address, req.Gender, req.DOB)
	if err != nil {
		httperrors.WriteJSON(w, httperrors.Internal("could not update profile"))
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// Addresses

func (h *ProfileHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	items, err := h.Repo.ListAddresses(userID)
	if err != nil {
		httperrors.WriteJSON(w, httperrors.Internal("could not list addresses"))
		return
	}
	if items == nil {
		items = []entities.AddressItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ProfileHandler) AddAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	var req AddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest("invalid request body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest(validationMessage(err)))
		return
	}

	item, err := h.Repo.AddAddress(userID, entities.AddressItem{
		Type:      req.Type,
		Address:   req.Address,
		City:      req.City,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		httperrors.WriteJSON(w, httperrors.Internal("could not add address"))
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *ProfileHandler) SetDefaultAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	if err := h.Repo.SetDefaultAddress(userID, mux.Vars(r)["id"]); err != nil {
		httperrors.WriteJSON(w, httperrors.NotFound(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Default address updated"})
}

func (h *ProfileHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	if err := h.Repo.DeleteAddress(userID, mux.Vars(r)["id"]); err != nil {
		httperrors.WriteJSON(w, httperrors.Internal("could not delete address"))
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Address deleted"})
}

// Identity documents

func (h *ProfileHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	items, err := h.Repo.ListDocuments(userID)
	if err != nil {
		httperrors.WriteJSON(w, httperrors.Internal("could not list documents"))
		return
	}
	if items == nil {
		items = []entities.DocumentItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// AddDocument handles a multipart form with type, number and front/back
// image files. Images go to object storage first; the row stores the URLs.
func (h *ProfileHandler) AddDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	if h.Storage == nil {
		httperrors.WriteJSON(w, httperrors.Internal("document storage is not configured"))
		return
	}
	if err := r.ParseMultipartForm(maxDocumentUploadBytes); err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest("invalid multipart form"))
		return
	}

	docType := r.FormValue("type")
	number := r.FormValue("number")
	if docType == "" || number == "" {
		httperrors.WriteJSON(w, httperrors.BadRequest("type and number are required"))
		return
	}

	item, err := h.Repo.AddDocument(userID, entities.DocumentItem{Type: docType, Number: number})
	if err != nil {
		httperrors.WriteJSON(w, httperrors.Internal("could not store document"))
		return
	}

	urls := make(map[string]string, 2)
	for _, side := range []string{"front", "back"} {
		file, header, err := r.FormFile(side)
		if err != nil {
			httperrors.WriteJSON(w, httperrors.BadRequest("both front and back images are required"))
			return
		}
		url, err := h.Storage.UploadDocumentImage(r.Context(), userID, item.ID, side,
			file, header.Size, header.Header.Get("Content-Type"))
		file.Close()
		if err != nil {
			httperrors.WriteJSON(w, httperrors.Internal("could not upload document image"))
			return
		}
		urls[side] = url
	}

	if err := h.Repo.UpdateDocumentImages(userID, item.ID, urls["front"], urls["back"]); err != nil {
		httperrors.WriteJSON(w, httperrors.Internal("could not store document images"))
		return
	}
	item.FrontImageURL = urls["front"]
	item.BackImageURL = urls["back"]
	writeJSON(w, http.StatusCreated, item)
}

func (h *ProfileHandler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	var req DocumentUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest("invalid request body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		httperrors.WriteJSON(w, httperrors.BadRequest(validationMessage(err)))
		return
	}

	item, err := h.Repo.UpdateDocument(userID, mux.Vars(r)["id"], req.Type, req.Number)
	if err != nil {
		httperrors.WriteJSON(w, httperrors.NotFound(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ProfileHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]
	if err := h.Repo.DeleteDocument(userID, id); err != nil {
		httperrors.WriteJSON(w, httperrors.Internal("could not delete document"))
		return
	}
	if h.Storage != nil {
		h.Storage.RemoveDocumentImages(r.Context(), userID, id)
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Document deleted"})
}
