package httpapi

import "net/http"

type contactRequest struct {
	ContactID string `json:"contact_id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
}

type assignmentRequest struct {
	ContactID string `json:"contact_id"`
	TagID     string `json:"tag_id"`
}

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUser(w, r)
	if !ok {
		return
	}

	contacts, err := s.contacts.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"contacts": contacts,
	})
}

func (s *Server) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUser(w, r)
	if !ok {
		return
	}
	var req contactRequest
	if !decode(w, r, &req) {
		return
	}

	contact, err := s.contacts.Create(r.Context(), userID, req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"status":  "success",
		"contact": contact,
	})
}

func (s *Server) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUser(w, r)
	if !ok {
		return
	}
	var req contactRequest
	if !decode(w, r, &req) {
		return
	}

	contact, err := s.contacts.Update(r.Context(), userID, req.ContactID, req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Contact updated successfully",
		"contact": contact,
	})
}

func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUser(w, r)
	if !ok {
		return
	}
	var req contactRequest
	if !decode(w, r, &req) {
		return
	}

	if err := s.contacts.Delete(r.Context(), userID, req.ContactID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Contact deleted successfully",
	})
}

func (s *Server) handleAssignTag(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUser(w, r)
	if !ok {
		return
	}
	var req assignmentRequest
	if !decode(w, r, &req) {
		return
	}

	if err := s.contacts.AssignTag(r.Context(), userID, req.ContactID, req.TagID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Tag is successfully assigned.",
	})
}

func (s *Server) handleUnassignTag(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUser(w, r)
	if !ok {
		return
	}
	var req assignmentRequest
	if !decode(w, r, &req) {
		return
	}

	if err := s.contacts.UnassignTag(r.Context(), userID, req.ContactID, req.TagID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Tag is successfully removed.",
	})
}
