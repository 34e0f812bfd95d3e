package server

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/tidytree/pkg/chart"
	"github.com/matzehuels/tidytree/pkg/errors"
	pio "github.com/matzehuels/tidytree/pkg/io"
	"github.com/matzehuels/tidytree/pkg/pipeline"
	"github.com/matzehuels/tidytree/pkg/tidy"
	"github.com/matzehuels/tidytree/pkg/tree"
)

// state is the reply to every chart request.
type state struct {
	Selection chart.Info `json:"selection"`
	Layout    tidy.Stats `json:"layout"`
	Zoom      float64    `json:"zoom"`
	Nodes     int        `json:"nodes"`
}

type selectResponse struct {
	state
	Hit bool `json:"hit"`
}

type labelRequest struct {
	Label string `json:"label"`
}

func (s *Server) snapshot() state {
	st := state{
		Selection: s.chart.Info(),
		Layout:    s.chart.Stats(),
		Zoom:      s.chart.Zoom(),
	}
	s.chart.View(func(root, _ *tree.Node) { st.Nodes = tree.Count(root) })
	return st
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) error {
	var buf bytes.Buffer
	var err error
	s.chart.View(func(root, _ *tree.Node) { err = pio.WriteJSON(root, &buf) })
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
	return nil
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) error {
	opts := s.render
	opts.Layout = s.chart.Config()

	var artifacts map[string][]byte
	var err error
	s.chart.View(func(root, selected *tree.Node) {
		id := selected.ID
		opts.Selected = &id
		artifacts, err = s.runner.Render(r.Context(), root, opts)
	})
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(artifacts[pipeline.FormatSVG])
	return nil
}

func (s *Server) handleSelection(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, s.snapshot())
	return nil
}

// handleSelect selects by ?id= or by the point ?x=&y=. A point outside every
// node leaves the selection alone and replies with hit=false.
func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	if raw := q.Get("id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidInput, "invalid id %q", raw)
		}
		if err := s.chart.Select(id); err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, selectResponse{state: s.snapshot(), Hit: true})
		return nil
	}

	x, errX := strconv.ParseFloat(q.Get("x"), 64)
	y, errY := strconv.ParseFloat(q.Get("y"), 64)
	if errX != nil || errY != nil {
		return errors.New(errors.ErrCodeInvalidInput, "select needs id or x and y")
	}
	hit := s.chart.SelectAt(x, y)
	writeJSON(w, http.StatusOK, selectResponse{state: s.snapshot(), Hit: hit})
	return nil
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) error {
	var req labelRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	if req.Label == "" {
		s.chart.AddChild()
	} else if _, err := s.chart.AddChildLabeled(req.Label); err != nil {
		return err
	}
	writeJSON(w, http.StatusCreated, s.snapshot())
	return nil
}

func (s *Server) handleRename(w http.ResponseWriter, r *http.Request) error {
	var req labelRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	if err := s.chart.Rename(req.Label); err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, s.snapshot())
	return nil
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) error {
	if err := s.chart.Remove(); err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, s.snapshot())
	return nil
}

func (s *Server) handleZoom(w http.ResponseWriter, r *http.Request) error {
	switch dir := chi.URLParam(r, "direction"); dir {
	case "in":
		s.chart.ZoomIn()
	case "out":
		s.chart.ZoomOut()
	default:
		return errors.New(errors.ErrCodeNotFound, "unknown zoom direction %q (want in or out)", dir)
	}
	writeJSON(w, http.StatusOK, s.snapshot())
	return nil
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, s.chart.Config())
	return nil
}

// handlePutConfig overlays the body on the current configuration, so a
// request may name only the fields it changes.
func (s *Server) handlePutConfig(w http.ResponseWriter, r *http.Request) error {
	cfg := s.chart.Config()
	if err := decodeJSON(r, &cfg); err != nil {
		return err
	}
	if err := s.chart.SetConfig(cfg); err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, cfg)
	return nil
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) error {
	if s.savePath == "" {
		return errors.New(errors.ErrCodeUnsupported, "saving is disabled (start the server with --save)")
	}
	var err error
	s.chart.View(func(root, _ *tree.Node) { err = pio.ExportFile(root, s.savePath) })
	if err != nil {
		return err
	}
	s.logger.Info("saved tree", "path", s.savePath)
	writeJSON(w, http.StatusOK, map[string]string{"path": s.savePath})
	return nil
}
