package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/courtside/hoopsapi/dataset"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	store     *dataset.Store
	JWTKey    []byte
	adminHash []byte
}

// New creates a Handler with the given data store, JWT signing key and
// bcrypt hash of the admin passphrase.
func New(store *dataset.Store, jwtKey, adminHash []byte) *Handler {
	return &Handler{store: store, JWTKey: jwtKey, adminHash: adminHash}
}

// snapshot resolves the :sport path parameter to the current data snapshot.
func (h *Handler) snapshot(c echo.Context) (*dataset.Snapshot, error) {
	sport, err := dataset.ParseSport(c.Param("sport"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	snap, ok := h.store.Snapshot(sport)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusServiceUnavailable, "data not loaded")
	}
	return snap, nil
}
