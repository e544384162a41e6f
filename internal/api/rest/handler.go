package rest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/api/shared/dto"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/api/shared/executor"
)

// HealthChecker reports whether a dependency is reachable
type HealthChecker func(ctx context.Context) error

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// POST /api/v1/accounts
	CreateAccount(c *gin.Context)
	// GET /api/v1/accounts/:id
	GetAccount(c *gin.Context)
	// GET /api/v1/accounts/:id/balance
	GetBalance(c *gin.Context)
	// GET /api/v1/accounts/:id/lots
	ListLots(c *gin.Context)
	// POST /api/v1/accounts/:id/credits
	Credit(c *gin.Context)
	// POST /api/v1/accounts/:id/debits
	Debit(c *gin.Context)

	// Reserve holds credit; agent accounts are checked against their daily cap
	// POST /api/v1/accounts/:id/reservations
	Reserve(c *gin.Context)
	// GET /api/v1/reservations/:id
	GetReservation(c *gin.Context)
	// Finalize settles a reservation; replaying a finalization_id returns the first result
	// POST /api/v1/reservations/:id/finalize
	Finalize(c *gin.Context)
	// POST /api/v1/reservations/:id/cancel
	Cancel(c *gin.Context)

	// GET /api/v1/accounts/:id/budget
	GetBudget(c *gin.Context)
	// PUT /api/v1/accounts/:id/budget
	SetBudget(c *gin.Context)

	// POST /api/v1/campaigns
	CreateCampaign(c *gin.Context)
	// POST /api/v1/campaigns/:id/grants
	IssueGrant(c *gin.Context)

	// GET /api/v1/usage-events?account_id=&community_id=&since=&until=&guard_failed=&limit=&offset=
	ListUsageEvents(c *gin.Context)

	// Operator endpoints (API key only)
	// POST /api/v1/system-accounts
	SeedSystemAccounts(c *gin.Context)
	// GET /api/v1/conservation
	CheckConservation(c *gin.Context)
	// GET /api/v1/dlq?status=&operation_type=&limit=&offset=
	ListDLQEntries(c *gin.Context)
	// POST /api/v1/dlq/:id/requeue
	RequeueDLQEntry(c *gin.Context)
	// GET /api/v1/config
	ListConfig(c *gin.Context)
	// PUT /api/v1/config/:key
	SetConfig(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
	checks   map[string]HealthChecker
}

// NewHandler creates a new REST API handler using the shared executor.
// checks are run by the health endpoint, keyed by dependency name.
func NewHandler(exec executor.Executor, checks map[string]HealthChecker) Handler {
	return &handler{
		executor: exec,
		checks:   checks,
	}
}

// bindJSON binds and validates a request body; it responds and returns false on failure
func bindJSON[T interface{ Validate() error }](c *gin.Context, req T) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return false
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return false
	}
	return true
}

func (h *handler) CreateAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *handler) GetAccount(c *gin.Context) {
	resp, err := h.executor.GetAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetBalance(c *gin.Context) {
	resp, err := h.executor.GetBalance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListLots(c *gin.Context) {
	resp, err := h.executor.ListLots(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) Credit(c *gin.Context) {
	var req dto.CreditRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.Credit(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	switch {
	case resp.Queued:
		status = http.StatusAccepted
	case resp.Replayed:
		status = http.StatusOK
	}
	c.JSON(status, resp)
}

func (h *handler) Debit(c *gin.Context) {
	var req dto.DebitRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.Debit(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) Reserve(c *gin.Context) {
	var req dto.ReserveRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.Reserve(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *handler) GetReservation(c *gin.Context) {
	resp, err := h.executor.GetReservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) Finalize(c *gin.Context) {
	var req dto.FinalizeRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.Finalize(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) Cancel(c *gin.Context) {
	resp, err := h.executor.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetBudget(c *gin.Context) {
	resp, err := h.executor.GetBudget(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) SetBudget(c *gin.Context) {
	var req dto.SetBudgetRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.SetBudget(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) CreateCampaign(c *gin.Context) {
	var req dto.CreateCampaignRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.CreateCampaign(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *handler) IssueGrant(c *gin.Context) {
	var req dto.IssueGrantRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.IssueGrant(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *handler) ListUsageEvents(c *gin.Context) {
	query, err := ParseListUsageEventsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.ListUsageEvents(c.Request.Context(), *query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) SeedSystemAccounts(c *gin.Context) {
	var req dto.SeedSystemAccountsRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.SeedSystemAccounts(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) CheckConservation(c *gin.Context) {
	resp, err := h.executor.CheckConservation(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListDLQEntries(c *gin.Context) {
	query, err := ParseListDLQEntriesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.ListDLQEntries(c.Request.Context(), *query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) RequeueDLQEntry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid DLQ entry id")
		return
	}

	resp, err := h.executor.RequeueDLQEntry(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListConfig(c *gin.Context) {
	resp, err := h.executor.ListConfig(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) SetConfig(c *gin.Context) {
	var req dto.SetConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	resp, err := h.executor.SetConfig(c.Request.Context(), c.Param("key"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HealthCheck returns the health status of the API and its dependencies
func (h *handler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	deps := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			deps[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}

	overall := "healthy"
	if status != http.StatusOK {
		overall = "unhealthy"
	}
	c.JSON(status, gin.H{
		"status":       overall,
		"dependencies": deps,
	})
}
