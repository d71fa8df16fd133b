package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/amirhossein-jamali/money-flow-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/money-flow-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/money-flow-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
)

// MoneyFlowHandler handles money flow HTTP requests.
// Failures are attached to the gin context and rendered by the error handler middleware.
type MoneyFlowHandler struct {
	useCase      usecase.MoneyFlowUseCase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewMoneyFlowHandler creates a new money flow handler instance
func NewMoneyFlowHandler(
	useCase usecase.MoneyFlowUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *MoneyFlowHandler {
	return &MoneyFlowHandler{
		useCase:      useCase,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create handles the POST /money_flows endpoint
func (h *MoneyFlowHandler) Create(c *gin.Context) {
	var req dto.CreateMoneyFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.rejectBinding(c, err)
		return
	}

	kind, err := entity.ParseMoneyFlowKind(req.Kind)
	if err != nil {
		_ = c.Error(err)
		return
	}

	moneyFlow, err := h.useCase.Create(c.Request.Context(), usecase.CreateMoneyFlowCommand{
		Title:        req.Title,
		Amount:       *req.Amount,
		OccurredDate: req.OccurredDate.Wall(h.timeProvider.Location()),
		Kind:         kind,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMoneyFlowResponse(moneyFlow))
}

// Get handles the GET /money_flows/:id endpoint
func (h *MoneyFlowHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	moneyFlow, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMoneyFlowResponse(moneyFlow))
}

// List handles the GET /money_flows endpoint, optionally filtered by ?kind=
func (h *MoneyFlowHandler) List(c *gin.Context) {
	var query dto.ListMoneyFlowsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.rejectBinding(c, err)
		return
	}

	// An absent kind means no filter; a present one must be a known token, even when empty
	var kind *entity.MoneyFlowKind
	if _, present := c.GetQuery("kind"); present {
		parsed := entity.MoneyFlowKind(query.Kind)
		if !parsed.IsValid() {
			_ = c.Error(fmt.Errorf("%w: %q (must be %q or %q)", errs.ErrInvalidKind, query.Kind, entity.KindExpense, entity.KindIncome))
			return
		}
		kind = &parsed
	}

	moneyFlows, err := h.useCase.List(c.Request.Context(), kind)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMoneyFlowListResponse(moneyFlows))
}

// Update handles the PUT /money_flows endpoint
func (h *MoneyFlowHandler) Update(c *gin.Context) {
	var req dto.UpdateMoneyFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.rejectBinding(c, err)
		return
	}

	kind, err := entity.ParseMoneyFlowKind(req.Kind)
	if err != nil {
		_ = c.Error(err)
		return
	}

	moneyFlow, err := h.useCase.Update(c.Request.Context(), usecase.UpdateMoneyFlowCommand{
		ID:           req.ID,
		Title:        req.Title,
		Amount:       *req.Amount,
		OccurredDate: req.OccurredDate.Wall(h.timeProvider.Location()),
		Kind:         kind,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMoneyFlowResponse(moneyFlow))
}

// Delete handles the DELETE /money_flows endpoint
func (h *MoneyFlowHandler) Delete(c *gin.Context) {
	var req dto.DeleteMoneyFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.rejectBinding(c, err)
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), req.ID); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MoneyFlowHandler) rejectBinding(c *gin.Context, err error) {
	detail := describeBindingError(err)
	logger.FromContext(c.Request.Context(), h.logger).Debug("Rejected malformed request", map[string]any{
		"path":   c.Request.URL.Path,
		"detail": detail,
	})
	_ = c.Error(errs.NewBusinessError(detail, fmt.Errorf("%w: %w", errs.ErrInvalidRequest, err)))
}

func parseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errs.NewBusinessError(errs.ErrInvalidMoneyFlowID.Error(), errs.ErrInvalidMoneyFlowID)
	}
	return id, nil
}
