package httpapi

import "net/http"

type tagRequest struct {
	TagID   string `json:"tag_id"`
	TagName string `json:"tag_name"`
}

func (s *Server) handleListTags(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUser(w, r)
	if !ok {
		return
	}

	tags, err := s.tags.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"tags":   tags,
	})
}

func (s *Server) handleCreateTag(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUser(w, r)
	if !ok {
		return
	}
	var req tagRequest
	if !decode(w, r, &req) {
		return
	}

	tag, err := s.tags.Create(r.Context(), userID, req.TagName)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Tag created successfully",
		"tag":     tag,
	})
}

func (s *Server) handleDeleteTag(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUser(w, r)
	if !ok {
		return
	}
	var req tagRequest
	if !decode(w, r, &req) {
		return
	}

	if err := s.tags.Delete(r.Context(), userID, req.TagID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Tag deleted successfully",
	})
}
