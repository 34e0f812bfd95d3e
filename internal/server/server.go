// Package server serves an editable chart to the browser.
//
// The page at / shows the org chart as SVG. Clicking a node selects it (the
// click position is hit-tested against the laid-out boxes); the toolbar adds
// and removes nodes, zooms and saves. Every action is a small JSON endpoint
// under /api, so the chart can also be driven with curl:
//
//	GET    /api/tree             laid-out tree as JSON
//	GET    /api/chart.svg        rendered chart with the selection highlighted
//	GET    /api/selection        the selected node
//	POST   /api/select?id=3      select by id
//	POST   /api/select?x=&y=     select the node containing a point
//	POST   /api/nodes            add a child to the selection ({"label": ...} optional)
//	PUT    /api/selection/label  rename the selection ({"label": ...})
//	DELETE /api/selection        remove the selection and its subtree
//	POST   /api/zoom/in          grow every node by 5%
//	POST   /api/zoom/out         shrink every node by 5%
//	GET    /api/config           layout configuration
//	PUT    /api/config           change layout configuration (partial JSON)
//	POST   /api/save             write the tree to the save path
package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/tidytree/pkg/chart"
	"github.com/matzehuels/tidytree/pkg/pipeline"
)

// Config configures a Server.
type Config struct {
	// Runner renders the chart. Nil uses an uncached runner.
	Runner *pipeline.Runner

	// Render holds the render settings. Formats and Selected are ignored.
	Render pipeline.Options

	// SavePath is where POST /api/save writes the tree. Empty disables saving.
	SavePath string

	Logger *log.Logger
}

// Server exposes a chart over HTTP. It is safe for concurrent requests; the
// chart serializes edits.
type Server struct {
	chart    *chart.Chart
	runner   *pipeline.Runner
	render   pipeline.Options
	savePath string
	logger   *log.Logger
}

// New creates a server for c.
func New(c *chart.Chart, cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	runner := cfg.Runner
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	render := cfg.Render
	render.Formats = []string{pipeline.FormatSVG}
	render.Selected = nil
	render.Logger = logger
	return &Server{
		chart:    c,
		runner:   runner,
		render:   render,
		savePath: cfg.SavePath,
		logger:   logger,
	}
}

// Handler returns the router with every route registered.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handlePage)
	r.Route("/api", func(r chi.Router) {
		r.Get("/tree", s.wrap(s.handleTree))
		r.Get("/chart.svg", s.wrap(s.handleSVG))
		r.Get("/selection", s.wrap(s.handleSelection))
		r.Post("/select", s.wrap(s.handleSelect))
		r.Post("/nodes", s.wrap(s.handleAdd))
		r.Put("/selection/label", s.wrap(s.handleRename))
		r.Delete("/selection", s.wrap(s.handleRemove))
		r.Post("/zoom/{direction}", s.wrap(s.handleZoom))
		r.Get("/config", s.wrap(s.handleGetConfig))
		r.Put("/config", s.wrap(s.handlePutConfig))
		r.Post("/save", s.wrap(s.handleSave))
	})
	return r
}
