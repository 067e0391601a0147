package preview

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gogpu/starrating"
)

// maxCanvas bounds image sizes requested through query parameters.
const maxCanvas = 4096

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type stateResponse struct {
	Rating  float64  `json:"rating"`
	States  []string `json:"states"`
	Stars   string   `json:"stars"`
	Changes int      `json:"changes"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGetRating(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	resp := s.snapshot()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTap(w http.ResponseWriter, r *http.Request) {
	slot, err := strconv.Atoi(chi.URLParam(r, "slot"))
	if err != nil || slot < 0 || slot >= starrating.SlotCount {
		writeError(w, http.StatusBadRequest, "invalid_slot", "slot must be an integer in [0, 4]")
		return
	}
	s.mu.Lock()
	s.ctl.Handle(starrating.EventTap{Slot: slot})
	resp := s.snapshot()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDrag(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	x, errX := strconv.ParseFloat(q.Get("x"), 64)
	width, errW := strconv.ParseFloat(q.Get("width"), 64)
	if errX != nil || errW != nil {
		writeError(w, http.StatusBadRequest, "invalid_position", "x and width must be numbers")
		return
	}
	s.mu.Lock()
	s.ctl.Handle(starrating.EventDrag{X: x, Width: width})
	resp := s.snapshot()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePNG(w http.ResponseWriter, r *http.Request) {
	width, height, ok := s.canvasSize(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	img, err := starrating.RenderImage(width, height, s.ctl, s.palette)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("preview: render failed", "err", err)
		writeError(w, http.StatusInternalServerError, "render_failed", err.Error())
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		writeError(w, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	width, height, ok := s.canvasSize(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	s.mu.Lock()
	err := starrating.EncodeSVG(&buf, float64(width), float64(height), s.ctl, s.palette)
	s.mu.Unlock()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

// canvasSize reads optional width/height query parameters, falling back to
// the configured canvas.
func (s *Server) canvasSize(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	width, height := s.file.Width, s.file.Height
	q := r.URL.Query()
	for _, p := range []struct {
		name string
		dst  *int
	}{{"width", &width}, {"height", &height}} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 || v > maxCanvas {
			writeError(w, http.StatusBadRequest, "invalid_size", p.name+" must be an integer in [1, 4096]")
			return 0, 0, false
		}
		*p.dst = v
	}
	return width, height, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
