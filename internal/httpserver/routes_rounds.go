// internal/httpserver/routes_rounds.go
//
// Round endpoints.
//   - POST /rounds                     → {roundId, token, expiresAt}
//   - GET  /rounds/{id}                → grid, score, words found so far
//   - POST /rounds/{id}/classify       {path} → {word, type}
//   - POST /rounds/{id}/submit         {path} → game.Submission
//   - POST /rounds/{id}/pointer        {layout, samples} → events + submissions
//   - GET  /rounds/{id}/summary        → found vs missed, score vs max score
//
// Notes:
//   - /pointer runs raw pointer samples through the gesture tracker kept in
//     the store entry; a release submits the traced path.
//   - Everything under /rounds/{id} needs the round's bearer token.

package httpserver

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"seehuhn.de/go/geom/vec"

	"github.com/robalobadob/wordhunt/internal/board"
	"github.com/robalobadob/wordhunt/internal/game"
	"github.com/robalobadob/wordhunt/internal/gesture"
	"github.com/robalobadob/wordhunt/internal/store"
)

func (s *Server) mountRounds() {
	s.r.Route("/rounds/{id}", func(r chi.Router) {
		r.Use(s.requireRound())
		r.Get("/", s.handleGetRound)
		r.Post("/classify", s.handleClassify)
		r.Post("/submit", s.handleSubmit)
		r.Post("/pointer", s.handlePointer)
		r.Get("/summary", s.handleSummary)
	})
}

// writeStoreErr maps store and round errors to JSON responses.
func writeStoreErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
	case errors.Is(err, game.ErrEmptyPath), errors.Is(err, game.ErrInvalidPath):
		http.Error(w, `{"error":"invalid_path"}`, http.StatusBadRequest)
	default:
		log.Error().Err(err).Msg("round update")
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
	}
}

// badRequest writes a 400 with a client error code.
func badRequest(w http.ResponseWriter, code string) {
	http.Error(w, `{"error":"`+code+`"}`, http.StatusBadRequest)
}

// ------------------------------ create -------------------------------------

type newRoundRes struct {
	RoundID   string    `json:"roundId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// handleNewRound starts a round on the posted grid.
func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	var req gridReq
	if !decodeJSON(w, r, &req) {
		return
	}
	g, code := req.grid()
	if code != "" {
		badRequest(w, code)
		return
	}

	rd := game.NewRound(g, s.lex, s.policy)
	tok, exp, err := s.tokens.Issue(rd.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign round token")
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	// the round lives as long as its token
	if err := s.store.Save(r.Context(), &store.Entry{Round: rd, ExpiresAt: exp}); err != nil {
		log.Error().Err(err).Msg("save round")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	log.Info().Str("roundId", rd.ID).Int("tiles", len(g.Tiles())).Msg("round created")

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(newRoundRes{RoundID: rd.ID, Token: tok, ExpiresAt: exp.UTC()})
}

// ------------------------------ read ---------------------------------------

type roundView struct {
	RoundID string     `json:"roundId"`
	Grid    board.Grid `json:"grid"`
	Score   int        `json:"score"`
	Words   []string   `json:"words"`
	Path    board.Path `json:"path"` // pointer path in progress, if any
}

func (s *Server) handleGetRound(w http.ResponseWriter, r *http.Request) {
	var view roundView
	err := s.store.Update(r.Context(), roundID(r), func(e *store.Entry) error {
		view = roundView{
			RoundID: e.Round.ID,
			Grid:    e.Round.Grid,
			Score:   e.Round.Score,
			Words:   append([]string{}, e.Round.Order...),
			Path:    e.Gesture.Path.Clone(),
		}
		return nil
	})
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(view)
}

// ---------------------------- classify / submit ----------------------------

type pathReq struct {
	Path board.Path `json:"path"`
}

type classifyRes struct {
	Word string        `json:"word"`
	Type game.WordType `json:"type"`
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req pathReq
	if !decodeJSON(w, r, &req) {
		return
	}
	var res classifyRes
	err := s.store.Update(r.Context(), roundID(r), func(e *store.Entry) error {
		res.Word, _ = e.Round.Grid.Word(req.Path)
		res.Type = e.Round.Classify(req.Path)
		return nil
	})
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req pathReq
	if !decodeJSON(w, r, &req) {
		return
	}
	var sub game.Submission
	err := s.store.Update(r.Context(), roundID(r), func(e *store.Entry) error {
		var err error
		sub, err = e.Round.Submit(req.Path)
		return err
	})
	switch {
	case errors.Is(err, game.ErrNotAWord):
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "not_a_word", "submission": sub})
		return
	case err != nil:
		writeStoreErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(sub)
}

// ------------------------------ pointer ------------------------------------

type layoutDTO struct {
	TilePx  float64 `json:"tilePx"`
	SpacePx float64 `json:"spacePx"`
	OriginX float64 `json:"originX"`
	OriginY float64 `json:"originY"`
}

type sampleDTO struct {
	Kind    string  `json:"kind"` // "down" | "move" | "up"
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Buttons int     `json:"buttons"`
}

type pointerReq struct {
	Layout  layoutDTO   `json:"layout"`
	Samples []sampleDTO `json:"samples"`
}

type pointerRes struct {
	Events      []gesture.Event   `json:"events"`
	Submissions []game.Submission `json:"submissions"`
	Path        board.Path        `json:"path"`
	Score       int               `json:"score"`
}

// parse validates the batch and converts it for the tracker. Samples must
// land within maxSampleReach tiles of the layout origin.
func (req pointerReq) parse() (board.Layout, []gesture.Sample, string) {
	l := req.Layout
	if len(req.Samples) > maxSamples {
		return board.Layout{}, nil, "too_many_samples"
	}
	reach := maxSampleReach * (l.TilePx + l.SpacePx)
	if l.TilePx <= 0 || l.SpacePx < 0 || math.IsInf(reach, 0) {
		return board.Layout{}, nil, "bad_layout"
	}

	samples := make([]gesture.Sample, 0, len(req.Samples))
	for _, d := range req.Samples {
		k := gesture.Kind(d.Kind)
		switch k {
		case gesture.Press, gesture.Move, gesture.Release:
		default:
			return board.Layout{}, nil, "bad_sample"
		}
		if math.Abs(d.X-l.OriginX) > reach || math.Abs(d.Y-l.OriginY) > reach {
			return board.Layout{}, nil, "sample_out_of_range"
		}
		samples = append(samples, gesture.Sample{Kind: k, Pos: vec.Vec2{X: d.X, Y: d.Y}, Buttons: d.Buttons})
	}
	layout := board.Layout{
		TilePx:  l.TilePx,
		SpacePx: l.SpacePx,
		Origin:  vec.Vec2{X: l.OriginX, Y: l.OriginY},
	}
	return layout, samples, ""
}

// handlePointer feeds a batch of samples through the round's tracker.
// Each PathSubmitted event is submitted to the round; words that are not in
// the lexicon come back as submissions of type "invalid".
func (s *Server) handlePointer(w http.ResponseWriter, r *http.Request) {
	var req pointerReq
	if !decodeJSON(w, r, &req) {
		return
	}
	layout, samples, code := req.parse()
	if code != "" {
		badRequest(w, code)
		return
	}

	res := pointerRes{Events: []gesture.Event{}, Submissions: []game.Submission{}}
	err := s.store.Update(r.Context(), roundID(r), func(e *store.Entry) error {
		m := gesture.Machine{Grid: e.Round.Grid, Layout: layout, Classifier: e.Round}
		for _, smp := range samples {
			var evs []gesture.Event
			e.Gesture, evs = m.Step(e.Gesture, smp)
			for _, ev := range evs {
				res.Events = append(res.Events, ev)
				if ev.Kind != gesture.PathSubmitted {
					continue
				}
				sub, err := e.Round.Submit(ev.Path)
				if err != nil && !errors.Is(err, game.ErrNotAWord) {
					return err
				}
				res.Submissions = append(res.Submissions, sub)
			}
		}
		res.Path = e.Gesture.Path.Clone()
		res.Score = e.Round.Score
		return nil
	})
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// ------------------------------ summary ------------------------------------

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	// the grid is fixed for the round, so solving can happen outside the lock
	var g board.Grid
	err := s.store.Update(r.Context(), roundID(r), func(e *store.Entry) error {
		g = e.Round.Grid
		return nil
	})
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	a, _ := s.cache.Get(g)

	var sum game.Summary
	err = s.store.Update(r.Context(), roundID(r), func(e *store.Entry) error {
		sum = e.Round.Summarise(a)
		return nil
	})
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(sum)
}
