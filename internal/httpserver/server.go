// internal/httpserver/server.go
//
// HTTP server wiring for the word hunt round service.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs,
//     access log).
//   - Public endpoints: "/", "/health", "/debug/words", POST /solve, POST /rounds.
//   - Round endpoints (round token required): mounted under /rounds/{id}.
//
// Notes:
//   - Every read or write of a round goes through store.Update so a round
//     only ever has one goroutine touching it.
//   - Solver results are cached by grid fingerprint; one lexicon and one
//     scoring policy are fixed for the lifetime of a Server.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/robalobadob/wordhunt/internal/board"
	"github.com/robalobadob/wordhunt/internal/game"
	"github.com/robalobadob/wordhunt/internal/scoring"
	"github.com/robalobadob/wordhunt/internal/solver"
	"github.com/robalobadob/wordhunt/internal/store"
	"github.com/robalobadob/wordhunt/internal/words"
)

// Request limits.
const (
	maxGridSide   = 16
	maxSamples    = 2048
	maxCachedGrid = 1024
	maxBodyBytes  = 1 << 20
	handlerBudget = 10 * time.Second

	// pointer samples further than this many tiles from the layout origin
	// are rejected
	maxSampleReach = maxGridSide + 2
)

// Config carries the fixed inputs of a Server.
type Config struct {
	Lexicon      game.Lexicon
	Policy       scoring.Policy
	Tokens       Tokens
	ClientOrigin string
}

// Server bundles router, round store and analysis cache.
type Server struct {
	r      *chi.Mux
	store  store.Store
	cache  *store.AnalysisCache
	lex    game.Lexicon
	policy scoring.Policy
	tokens Tokens
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, cfg Config) *Server {
	s := &Server{
		r:      chi.NewRouter(),
		store:  st,
		lex:    cfg.Lexicon,
		policy: cfg.Policy,
		tokens: cfg.Tokens,
	}
	s.cache = store.NewAnalysisCache(maxCachedGrid, func(g board.Grid) solver.Analysis {
		return solver.Solve(g, s.lex, s.policy)
	})

	origin := cfg.ClientOrigin
	if origin == "" {
		origin = "http://localhost:5173"
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(accessLog)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(handlerBudget))
	s.r.Use(jsonContentType)
	s.r.Use(cors(origin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordhunt-go","endpoints":["/health","POST /solve","POST /rounds","/rounds/{id}/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		n, src := words.Stats()
		_ = json.NewEncoder(w).Encode(map[string]any{"words": n, "source": src, "cachedGrids": s.cache.Len()})
	})

	s.r.Post("/solve", s.handleSolve)
	s.r.Post("/rounds", s.handleNewRound)
	s.mountRounds()

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------ helpers ------------------------------------

// gridReq accepts either a JSON grid (null = no tile) or the compact
// "CAT.,DOGS" form understood by board.Parse.
type gridReq struct {
	Grid    board.Grid `json:"grid"`
	Compact string     `json:"compact"`
}

// grid normalises the requested grid and reports a client error code.
func (req gridReq) grid() (board.Grid, string) {
	g := req.Grid
	if req.Compact != "" {
		g = board.Parse(req.Compact)
	}
	if g.Height() > maxGridSide || g.Width() > maxGridSide {
		return nil, "grid_too_large"
	}
	out := make(board.Grid, len(g))
	for y, row := range g {
		out[y] = make([]string, len(row))
		for x, t := range row {
			out[y][x] = strings.ToUpper(strings.TrimSpace(t))
		}
	}
	if len(out.Tiles()) == 0 {
		return nil, "empty_grid"
	}
	return out, ""
}

// decodeJSON reads a bounded JSON body into v, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return false
	}
	return true
}

// ------------------------------ SOLVE --------------------------------------

type solveRes struct {
	solver.Analysis
	Cached bool `json:"cached"`
}

// handleSolve returns every word on the posted grid and the maximum score.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req gridReq
	if !decodeJSON(w, r, &req) {
		return
	}
	g, code := req.grid()
	if code != "" {
		badRequest(w, code)
		return
	}
	a, cached := s.cache.Get(g)
	_ = json.NewEncoder(w).Encode(solveRes{Analysis: a, Cached: cached})
}
