package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fitplanhub/fitplanhub/internal/access"
	"github.com/fitplanhub/fitplanhub/internal/api/middleware"
)

// idParam parses a numeric chi URL parameter
func idParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// viewerFrom builds the access viewer for the request: anonymous when no
// verified identity is present in the context.
func viewerFrom(r *http.Request) access.Viewer {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		return access.Anonymous
	}
	role, ok := middleware.GetUserRole(r)
	if !ok {
		return access.Anonymous
	}
	return access.NewViewer(userID, role)
}
