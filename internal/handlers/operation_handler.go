package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/models"
	"ledgerbook/internal/pagination"
	"ledgerbook/internal/services"
)

// OperationHandler handles ledger requests: recording operations and
// listing operation history.
type OperationHandler struct {
	ledgerService services.LedgerServicer
}

// NewOperationHandler creates a new OperationHandler.
func NewOperationHandler(ledgerService services.LedgerServicer) *OperationHandler {
	return &OperationHandler{ledgerService: ledgerService}
}

// RecordOperationRequest represents the request payload for recording an
// operation. Kind is optional; when present it must match the category's
// kind. Date defaults to today when omitted.
type RecordOperationRequest struct {
	Amount     string `json:"amount" binding:"required,money"`
	Kind       string `json:"kind" binding:"omitempty,operation_kind"`
	Date       string `json:"date" binding:"omitempty,iso_date"`
	CategoryID uint   `json:"category_id" binding:"required"`
	AccountID  uint   `json:"account_id" binding:"required"`
	Notes      string `json:"notes" binding:"max=500"`
}

// RecordOperation records an income or expense against an account.
func (h *OperationHandler) RecordOperation(c *gin.Context) {
	var req RecordOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var date models.Date
	if req.Date != "" {
		parsed, err := models.ParseDate(req.Date)
		if err != nil {
			respondWithError(c, err)
			return
		}
		date = parsed
	}

	operation, err := h.ledgerService.RecordOperation(req.Amount, req.Kind, date, req.CategoryID, req.AccountID, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"operation": operation})
}

// ListOperations returns all operations, newest operation date first.
func (h *OperationHandler) ListOperations(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	operations, err := h.ledgerService.ListOperations(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, operations)
}

// ListAccountOperations returns the operations recorded against one account.
func (h *OperationHandler) ListAccountOperations(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	operations, err := h.ledgerService.ListOperationsByAccount(id, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, operations)
}
