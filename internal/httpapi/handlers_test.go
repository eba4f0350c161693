package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tranmh/sudoku-solver/internal/board"
	"github.com/tranmh/sudoku-solver/internal/generator"
	"github.com/tranmh/sudoku-solver/internal/hint"
	"github.com/tranmh/sudoku-solver/internal/solver"
	"github.com/tranmh/sudoku-solver/internal/storage"
	"github.com/tranmh/sudoku-solver/internal/usecase"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	uc := usecase.New(generator.New(solver.DLX{}), hint.Singles{}, storage.NewFS(t.TempDir()))
	return New(uc, nil)
}

func TestHandleSolve(t *testing.T) {
	h := newTestHandler(t)
	var b board.Board
	b.Set(0, 0, 5)

	body, _ := json.Marshal(solveReq{Board: b, Smart: true})
	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	h.handleSolve(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp solveResp
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Solved {
		t.Fatalf("expected the board to be solved")
	}
}

func TestHandleSolveRejectsWrongMethod(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/solve", nil)
	rr := httptest.NewRecorder()

	h.handleSolve(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rr.Code)
	}
}

func TestHandleValidate(t *testing.T) {
	h := newTestHandler(t)
	var b board.Board
	b.Set(0, 0, 5)
	b.Set(0, 1, 5) // duplicate

	body, _ := json.Marshal(boardReq{Board: b})
	req := httptest.NewRequest(http.MethodPost, "/api/validate", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	h.handleValidate(rr, req)

	var resp validateResp
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.OK {
		t.Fatalf("expected the duplicate board to be invalid")
	}
}

func TestHandleGenerateSaveAndList(t *testing.T) {
	h := newTestHandler(t)

	genBody, _ := json.Marshal(generateReq{Difficulty: "easy", Seed: 7})
	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewReader(genBody))
	rr := httptest.NewRecorder()
	h.handleGenerate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("generate status = %d, want 200", rr.Code)
	}
	var genResp generateResp
	if err := json.NewDecoder(rr.Body).Decode(&genResp); err != nil {
		t.Fatalf("decode generate: %v", err)
	}

	saveBody, _ := json.Marshal(genResp.Puzzle)
	req = httptest.NewRequest(http.MethodPost, "/api/save", bytes.NewReader(saveBody))
	rr = httptest.NewRecorder()
	h.handleSave(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("save status = %d, want 200", rr.Code)
	}

	listReq := httptest.NewRequest(http.MethodGet, "/api/list", nil)
	listRR := httptest.NewRecorder()
	h.handleList(listRR, listReq)

	var listResp2 listResp
	if err := json.NewDecoder(listRR.Body).Decode(&listResp2); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listResp2.Puzzles) != 1 {
		t.Fatalf("List returned %d puzzles, want 1", len(listResp2.Puzzles))
	}
}
