// Package httpapi exposes the solver, generator, hinter and storage
// facade as a JSON HTTP API, adapted from the teacher's adapters/http
// package. The teacher additionally served an HTML UI via embedded
// templates; those template and static assets were never part of this
// retrieval and are dropped here (see the project's design notes), so
// this package is JSON-only.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tranmh/sudoku-solver/internal/board"
	"github.com/tranmh/sudoku-solver/internal/difficulty"
	"github.com/tranmh/sudoku-solver/internal/puzzle"
	"github.com/tranmh/sudoku-solver/internal/usecase"
	"github.com/tranmh/sudoku-solver/internal/validator"
)

// Handler wires the usecase facade to HTTP.
type Handler struct {
	UC  *usecase.Service
	Log *slog.Logger
}

// New wires a Handler around uc, defaulting to slog's default logger when
// log is nil.
func New(uc *usecase.Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{UC: uc, Log: log}
}

// Register attaches every route to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

func parseDifficulty(s string) difficulty.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return difficulty.Easy
	case "hard":
		return difficulty.Hard
	case "expert":
		return difficulty.Expert
	default:
		return difficulty.Medium
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Puzzle puzzle.Puzzle `json:"puzzle,omitempty"`
	Error  string        `json:"error,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, generateResp{Error: "method not allowed"})
		return
	}
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		writeJSON(w, http.StatusBadRequest, generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	now := time.Now().UnixNano()
	if seed == 0 {
		seed = now
	}
	p, err := h.UC.Generate(r.Context(), seed, parseDifficulty(req.Difficulty), now)
	if err != nil {
		h.Log.Error("generate failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, generateResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, generateResp{Puzzle: p})
}

// ---- Validate ----

type boardReq struct {
	Board board.Board `json:"board"`
}
type validateResp struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, validateResp{Error: "method not allowed"})
		return
	}
	var req boardReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, validateResp{OK: validator.IsValid(req.Board)})
}

// ---- Solve ----

type solveReq struct {
	Board board.Board `json:"board"`
	Smart bool        `json:"smart,omitempty"`
}
type solveResp struct {
	Board  board.Board `json:"board,omitempty"`
	Count  int         `json:"assignments,omitempty"`
	Solved bool        `json:"solved"`
	Error  string      `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, solveResp{Error: "method not allowed"})
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	out, count, solved := h.UC.Solve(req.Board, req.Smart)
	writeJSON(w, http.StatusOK, solveResp{Board: out, Count: count, Solved: solved})
}

// ---- Hint ----

type hintResp struct {
	Found bool      `json:"found"`
	Cell  board.Pos `json:"cell,omitempty"`
	Digit board.Digit `json:"digit,omitempty"`
	Message string  `json:"message,omitempty"`
	Error string    `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, hintResp{Error: "method not allowed"})
		return
	}
	var req boardReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	hh, ok, err := h.UC.Hint(req.Board)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, hintResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, hintResp{Found: ok, Cell: hh.Cell, Digit: hh.Digit, Message: hh.Message})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, saveResp{Error: "method not allowed"})
		return
	}
	var p puzzle.Puzzle
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if p.ID == "" {
		p.ID = strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		writeJSON(w, http.StatusInternalServerError, saveResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}
type loadResp struct {
	Puzzle *puzzle.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, loadResp{Error: "method not allowed"})
		return
	}
	var req loadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeJSON(w, http.StatusBadRequest, loadResp{Error: "invalid JSON or missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, loadResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []puzzle.Meta `json:"puzzles"`
	Error   string        `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, listResp{Error: "method not allowed"})
		return
	}
	ps, err := h.UC.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, listResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, listResp{Puzzles: ps})
}
