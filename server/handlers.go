package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lixenwraith/tilefolio/engine"
	"github.com/lixenwraith/tilefolio/world"
)

type handler struct {
	content *world.Content
	snaps   *engine.SnapshotStore
}

type worldResponse struct {
	World world.Config           `json:"world"`
	Zones []world.ZoneDescriptor `json:"zones"`
	Gates []world.Gate           `json:"gates"`
}

type itemResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Glyph     string     `json:"glyph"`
	Zone      world.Zone `json:"zone"`
	Blurb     string     `json:"blurb"`
	Link      string     `json:"link,omitempty"`
	X         float64    `json:"x"`
	Y         float64    `json:"y"`
	Collected bool       `json:"collected"`
}

type stateResponse struct {
	Frame     int64            `json:"frame"`
	X         float64          `json:"x"`
	Y         float64          `json:"y"`
	Facing    engine.Direction `json:"facing"`
	Zone      world.Zone       `json:"zone"`
	Collected int              `json:"collected"`
	Total     int              `json:"total"`
	Popup     string           `json:"popup,omitempty"`
	Paused    bool             `json:"paused"`
}

// getWorld handles GET /api/world
func (h *handler) getWorld(w http.ResponseWriter, r *http.Request) {
	resp := worldResponse{World: h.content.World, Gates: h.content.Gates}
	for _, z := range world.Zones {
		if zd, ok := h.content.Zone(z); ok {
			resp.Zones = append(resp.Zones, zd)
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

// listItems handles GET /api/items
func (h *handler) listItems(w http.ResponseWriter, r *http.Request) {
	snap := h.snaps.Load()
	items := make([]itemResponse, 0, len(h.content.Items))
	for _, it := range h.content.Items {
		items = append(items, toItemResponse(it, snap))
	}
	respondJSON(w, http.StatusOK, items)
}

// getItem handles GET /api/items/{id}
func (h *handler) getItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	it, ok := h.content.Item(id)
	if !ok {
		respondError(w, http.StatusNotFound, "item not found")
		return
	}

	respondJSON(w, http.StatusOK, toItemResponse(it, h.snaps.Load()))
}

// getState handles GET /api/state
func (h *handler) getState(w http.ResponseWriter, r *http.Request) {
	snap := h.snaps.Load()
	if snap == nil {
		respondError(w, http.StatusServiceUnavailable, "no frame published yet")
		return
	}
	respondJSON(w, http.StatusOK, stateResponse{
		Frame:     snap.Frame,
		X:         snap.X,
		Y:         snap.Y,
		Facing:    snap.Dir,
		Zone:      snap.Zone,
		Collected: len(snap.Collected),
		Total:     len(h.content.Items),
		Popup:     snap.Popup,
		Paused:    snap.Paused,
	})
}

func toItemResponse(it world.Item, snap *engine.Snapshot) itemResponse {
	return itemResponse{
		ID:        it.ID,
		Name:      it.Name,
		Glyph:     string(it.Glyph),
		Zone:      it.Zone,
		Blurb:     it.Blurb,
		Link:      it.Link,
		X:         it.X,
		Y:         it.Y,
		Collected: snap != nil && snap.Has(it.ID),
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
