package httpadapter

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"svw.info/watersort/internal/domain"
	"svw.info/watersort/internal/generator"
	"svw.info/watersort/internal/metrics"
	"svw.info/watersort/internal/usecase"
)

// Options tunes the handler.
type Options struct {
	// SolveTimeout bounds solve and hint requests.
	SolveTimeout time.Duration
	// MaxGames caps concurrently held sessions.
	MaxGames int
	// SolveRate limits solve and hint requests per second across all
	// sessions; 0 disables the limit. SolveBurst defaults to 1.
	SolveRate  float64
	SolveBurst int
}

// Handler exposes game sessions over JSON. Each session owns one board.
type Handler struct {
	UC     *usecase.Service
	Logger *slog.Logger
	opts   Options

	limiter *rate.Limiter

	mu    sync.Mutex
	games map[string]*game
}

// game is one live board and the level it was dealt from.
type game struct {
	mu    sync.Mutex
	level *domain.Level
	board *domain.Board
}

func New(uc *usecase.Service, logger *slog.Logger, opts Options) *Handler {
	if opts.SolveTimeout <= 0 {
		opts.SolveTimeout = 10 * time.Second
	}
	if opts.MaxGames <= 0 {
		opts.MaxGames = 1000
	}
	h := &Handler{UC: uc, Logger: logger, opts: opts, games: make(map[string]*game)}
	if opts.SolveRate > 0 {
		h.limiter = rate.NewLimiter(rate.Limit(opts.SolveRate), max(opts.SolveBurst, 1))
	}
	return h
}

func (h *Handler) Register(r gin.IRouter) {
	api := r.Group("/api")
	api.GET("/levels", h.handleLevels)
	api.POST("/games", h.handleCreate)
	api.GET("/games/:id", h.handleState)
	api.DELETE("/games/:id", h.handleDelete)
	api.POST("/games/:id/pour", h.handlePour)
	api.POST("/games/:id/undo", h.handleUndo)
	api.POST("/games/:id/reset", h.handleReset)
	api.POST("/games/:id/solve", RateLimit(h.limiter), h.handleSolve)
	api.POST("/games/:id/hint", RateLimit(h.limiter), h.handleHint)
	api.POST("/games/:id/validate", h.handleValidate)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

var errGameNotFound = errors.New("game not found")

type errorResp struct {
	Error string `json:"error"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidIndex), errors.Is(err, domain.ErrBadLayout),
		errors.Is(err, domain.ErrUnknownColor), errors.Is(err, domain.ErrTooManyColors):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrLevelNotFound), errors.Is(err, errGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, generator.ErrNoLevel):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.Logger.Error("request failed", "path", c.FullPath(), "err", err)
	}
	c.JSON(status, errorResp{Error: err.Error()})
}

// bind decodes an optional JSON body; an empty body leaves req untouched.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

func (h *Handler) lookup(c *gin.Context) (*game, bool) {
	h.mu.Lock()
	g, ok := h.games[c.Param("id")]
	h.mu.Unlock()
	if !ok {
		h.fail(c, errGameNotFound)
	}
	return g, ok
}

// ---- State ----

// stateResp carries the board as slot codes (Bottles) and as colour names per
// bottle, bottom to top (Colors).
type stateResp struct {
	ID            string           `json:"id"`
	Level         string           `json:"level,omitempty"`
	Bottles       []int            `json:"bottles"`
	Colors        [][]domain.Color `json:"colors"`
	Count         int              `json:"count"`
	Win           bool             `json:"win"`
	MoveAvailable bool             `json:"moveAvailable"`
	CanBeSorted   bool             `json:"canBeSorted"`
	UndoAvailable bool             `json:"undoAvailable"`
	Text          string           `json:"text"`
}

// state must be called with g.mu held.
func state(id string, g *game) stateResp {
	raw := g.board.Bottles()
	codes := make([]int, len(raw))
	for i, v := range raw {
		codes[i] = int(v)
	}
	return stateResp{
		ID:            id,
		Level:         g.level.ID,
		Bottles:       codes,
		Colors:        g.board.Snapshot(),
		Count:         g.board.BottlesCount(),
		Win:           g.board.Win(),
		MoveAvailable: g.board.MoveAvailable(),
		CanBeSorted:   g.board.CanBeSorted(),
		UndoAvailable: g.board.UndoAvailable(),
		Text:          g.board.String(),
	}
}

func (h *Handler) handleState(c *gin.Context) {
	g, ok := h.lookup(c)
	if !ok {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	c.JSON(http.StatusOK, state(c.Param("id"), g))
}

// ---- Levels ----

type levelsResp struct {
	Levels []domain.LevelMeta `json:"levels"`
}

func (h *Handler) handleLevels(c *gin.Context) {
	ls, err := h.UC.ListLevels(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, levelsResp{Levels: ls})
}

// ---- Create / Delete ----

// createReq picks a custom layout (Bottles, in the state payload's codes), a
// catalogue level, or a generated one, in that order.
type createReq struct {
	Bottles    []int  `json:"bottles,omitempty" binding:"omitempty,dive,gte=0,lte=255"`
	LevelID    string `json:"levelId,omitempty"`
	Difficulty string `json:"difficulty,omitempty" binding:"omitempty,oneof=easy medium hard expert"`
	Seed       int64  `json:"seed,omitempty"`
}

func (h *Handler) handleCreate(c *gin.Context) {
	var req createReq
	if !bind(c, &req) {
		return
	}
	ctx := c.Request.Context()
	var (
		lvl *domain.Level
		err error
	)
	switch {
	case len(req.Bottles) > 0:
		lvl, err = customLevel(req.Bottles)
	case req.LevelID != "":
		lvl, err = h.UC.Level(ctx, req.LevelID)
	default:
		seed := req.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		gctx, cancel := context.WithTimeout(ctx, h.opts.SolveTimeout)
		defer cancel()
		lvl, _, err = h.UC.Generate(gctx, seed, domain.ParseDifficulty(req.Difficulty))
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	b, err := lvl.Board()
	if err != nil {
		h.fail(c, err)
		return
	}

	id := uuid.NewString()
	g := &game{level: lvl, board: b}
	// g is not shared until it is in the map.
	resp := state(id, g)

	h.mu.Lock()
	if len(h.games) >= h.opts.MaxGames {
		h.mu.Unlock()
		c.JSON(http.StatusTooManyRequests, errorResp{Error: "too many games"})
		return
	}
	h.games[id] = g
	metrics.SetGamesActive(len(h.games))
	h.mu.Unlock()

	h.Logger.Debug("game created", "id", id, "level", lvl.ID)
	c.JSON(http.StatusCreated, resp)
}

// customLevel turns posted slot codes into a one-off level so reset can deal it again.
func customLevel(codes []int) (*domain.Level, error) {
	raw := make([]byte, len(codes))
	for i, v := range codes {
		raw[i] = byte(v)
	}
	b, err := domain.NewBoardFromBottles(raw)
	if err != nil {
		return nil, err
	}
	return &domain.Level{ID: "custom", Name: "Custom layout", Difficulty: domain.Medium, Bottles: b.Snapshot()}, nil
}

func (h *Handler) handleDelete(c *gin.Context) {
	id := c.Param("id")
	h.mu.Lock()
	_, ok := h.games[id]
	delete(h.games, id)
	metrics.SetGamesActive(len(h.games))
	h.mu.Unlock()
	if !ok {
		h.fail(c, errGameNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- Commands ----

type pourReq struct {
	From *int `json:"from" binding:"required"`
	To   *int `json:"to" binding:"required"`
}

type pourResp struct {
	Moved int       `json:"moved"`
	State stateResp `json:"state"`
}

func (h *Handler) handlePour(c *gin.Context) {
	g, ok := h.lookup(c)
	if !ok {
		return
	}
	var req pourReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	moved, err := g.board.Pour(*req.From, *req.To)
	switch {
	case err != nil:
		metrics.ObservePour("invalid")
		h.fail(c, err)
		return
	case moved == 0:
		metrics.ObservePour("noop")
	default:
		metrics.ObservePour("moved")
	}
	c.JSON(http.StatusOK, pourResp{Moved: moved, State: state(c.Param("id"), g)})
}

type undoResp struct {
	Undone bool      `json:"undone"`
	State  stateResp `json:"state"`
}

func (h *Handler) handleUndo(c *gin.Context) {
	g, ok := h.lookup(c)
	if !ok {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	undone := g.board.Undo()
	c.JSON(http.StatusOK, undoResp{Undone: undone, State: state(c.Param("id"), g)})
}

// handleReset clears the board and deals the game's level again.
func (h *Handler) handleReset(c *gin.Context) {
	g, ok := h.lookup(c)
	if !ok {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.board.Reset()
	fresh, err := g.level.Board()
	if err != nil {
		h.fail(c, err)
		return
	}
	g.board = fresh
	c.JSON(http.StatusOK, state(c.Param("id"), g))
}

// ---- Solve / Hint / Validate ----

type solveReq struct {
	Depth  int  `json:"depth,omitempty" binding:"gte=0,lte=500"`
	Replay bool `json:"replay,omitempty"`
}

type solveResp struct {
	Moves      []domain.Move `json:"moves"`
	Found      bool          `json:"found"`
	Replayed   bool          `json:"replayed"`
	DurationMs int64         `json:"durationMs"`
	Nodes      int           `json:"nodes"`
	State      stateResp     `json:"state"`
}

func (h *Handler) depthFor(g *game, requested int) int {
	if requested > 0 {
		return requested
	}
	return h.UC.LevelDepth(g.level)
}

func (h *Handler) handleSolve(c *gin.Context) {
	g, ok := h.lookup(c)
	if !ok {
		return
	}
	var req solveReq
	if !bind(c, &req) {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.opts.SolveTimeout)
	defer cancel()

	g.mu.Lock()
	defer g.mu.Unlock()
	depth := h.depthFor(g, req.Depth)
	solve := h.UC.Solve
	target := g.board.Clone()
	if req.Replay {
		solve = h.UC.SolveAndReplay
		target = g.board
	}
	moves, st, err := solve(ctx, target, depth)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.Logger.Debug("solved", "id", c.Param("id"), "depth", depth, "moves", len(moves), "nodes", st.Nodes, "dur", st.Duration)
	c.JSON(http.StatusOK, solveResp{
		Moves:      moves,
		Found:      len(moves) > 0 || g.board.Win(),
		Replayed:   req.Replay && len(moves) > 0,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
		State:      state(c.Param("id"), g),
	})
}

type hintReq struct {
	Depth int `json:"depth,omitempty" binding:"gte=0,lte=500"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint"`
}

func (h *Handler) handleHint(c *gin.Context) {
	g, ok := h.lookup(c)
	if !ok {
		return
	}
	var req hintReq
	if !bind(c, &req) {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.opts.SolveTimeout)
	defer cancel()

	g.mu.Lock()
	defer g.mu.Unlock()
	hh, found, err := h.UC.Hint(ctx, g.board.Clone(), h.depthFor(g, req.Depth))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hintResp{Found: found, Hint: hh})
}

type validateResp struct {
	OK        bool                   `json:"ok"`
	Conflicts []domain.ColorConflict `json:"conflicts,omitempty"`
}

func (h *Handler) handleValidate(c *gin.Context) {
	g, ok := h.lookup(c)
	if !ok {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	valid, conflicts, err := h.UC.Validate(c.Request.Context(), g.board)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, validateResp{OK: valid, Conflicts: conflicts})
}
