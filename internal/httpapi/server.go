// Package httpapi exposes the contact and tag services over plain-JSON REST.
// Routes are scoped by the user id in the path; the auth middleware verifies
// the Bearer token and handlers additionally check that the token's user
// matches the path, so one user can never read or mutate another's records.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ekarslan/rolodex/internal/auth"
	"github.com/ekarslan/rolodex/internal/middleware"
	"github.com/ekarslan/rolodex/internal/service"
)

// Server holds the handler dependencies and builds the route table.
type Server struct {
	contacts      *service.ContactService
	tags          *service.TagService
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
}

// New creates an HTTP API server over the given services.
func New(contacts *service.ContactService, tags *service.TagService, authenticator auth.Authenticator, jwtManager *auth.JWTManager) *Server {
	return &Server{
		contacts:      contacts,
		tags:          tags,
		authenticator: authenticator,
		jwtManager:    jwtManager,
	}
}

// Routes returns the mux with every API route registered. Register and
// login are open; everything else requires a valid Bearer token.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	protect := middleware.RequireAuth(s.jwtManager)

	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("POST /login", s.handleLogin)

	mux.Handle("GET /contacts/{userID}", protect(http.HandlerFunc(s.handleListContacts)))
	mux.Handle("POST /contacts/create/{userID}", protect(http.HandlerFunc(s.handleCreateContact)))
	mux.Handle("POST /contacts/update/{userID}", protect(http.HandlerFunc(s.handleUpdateContact)))
	mux.Handle("DELETE /contacts/{userID}", protect(http.HandlerFunc(s.handleDeleteContact)))
	mux.Handle("POST /contacts/assign_tag/{userID}", protect(http.HandlerFunc(s.handleAssignTag)))
	mux.Handle("POST /contacts/unassign_tag/{userID}", protect(http.HandlerFunc(s.handleUnassignTag)))

	mux.Handle("GET /tags/{userID}", protect(http.HandlerFunc(s.handleListTags)))
	mux.Handle("POST /tags/create/{userID}", protect(http.HandlerFunc(s.handleCreateTag)))
	mux.Handle("DELETE /tags/{userID}", protect(http.HandlerFunc(s.handleDeleteTag)))

	return mux
}

// pathUser returns the user id from the path after checking it matches the
// authenticated token. On mismatch it writes 403 and returns false.
func (s *Server) pathUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.PathValue("userID")
	if middleware.GetUserID(r.Context()) != userID {
		writeError(w, http.StatusForbidden, "token does not match user")
		return "", false
	}
	return userID, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decode reads the JSON request body into v, writing a 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// writeServiceError maps the service error taxonomy onto HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotOwned),
		errors.Is(err, service.ErrNotAssigned):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrAlreadyAssigned),
		errors.Is(err, service.ErrDuplicateTag):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNoSuchUser):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmptyTagName):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
