package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bodeppav/New-Expense-Tracker-Backend/apperror"
	"github.com/bodeppav/New-Expense-Tracker-Backend/logger"
	"github.com/bodeppav/New-Expense-Tracker-Backend/middleware"
	"github.com/bodeppav/New-Expense-Tracker-Backend/models"
)

type CreateExpenseRequest struct {
	Title    string   `json:"title" binding:"required"`
	Amount   *float64 `json:"amount" binding:"required"`
	Date     string   `json:"date" binding:"required"`
	Category string   `json:"category" binding:"required"`
	// Accepted for wire compatibility with older clients; must match the
	// authenticated user when present.
	UserID string `json:"userId"`
}

type UpdateExpenseRequest struct {
	Title    string   `json:"title" binding:"required"`
	Amount   *float64 `json:"amount" binding:"required"`
	Date     string   `json:"date" binding:"required"`
	Category string   `json:"category" binding:"required"`
}

// ownerID resolves the owning user for the request: always the token subject.
// A caller-supplied id is only validated against it, never trusted on its own.
func ownerID(c *gin.Context, supplied string) (string, error) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return "", apperror.NewAuth("User not authenticated", nil)
	}
	if supplied != "" && supplied != claims.UserID {
		return "", apperror.NewForbidden("Cannot access another user's expenses")
	}
	return claims.UserID, nil
}

func (h *Handler) HandleGetExpenses(c *gin.Context) {
	userID, err := ownerID(c, c.Query("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	expenses, err := h.expenses.ListExpenses(c.Request.Context(), userID)
	if err != nil {
		logger.Get().Error("failed to fetch expenses",
			zap.String("user_id", userID),
			zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

func (h *Handler) HandleCreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error adding expense: " + err.Error()})
		return
	}

	userID, err := ownerID(c, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	expense := &models.Expense{
		Title:    req.Title,
		Amount:   *req.Amount,
		Date:     req.Date,
		Category: req.Category,
		UserID:   userID,
	}

	created, err := h.expenses.CreateExpense(c.Request.Context(), expense)
	if err != nil {
		logger.Get().Error("failed to create expense",
			zap.String("user_id", userID),
			zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) HandleUpdateExpense(c *gin.Context) {
	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error updating expense: " + err.Error()})
		return
	}

	id := c.Param("id")
	updated, err := h.expenses.UpdateExpense(c.Request.Context(), id, req.Title, *req.Amount, req.Date, req.Category)
	if err != nil {
		if !apperror.IsNotFound(err) {
			logger.Get().Error("failed to update expense",
				zap.String("expense_id", id),
				zap.Error(err))
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense updated successfully", "updatedExpense": updated})
}

func (h *Handler) HandleDeleteExpense(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.expenses.DeleteExpense(c.Request.Context(), id)
	if err != nil {
		if !apperror.IsNotFound(err) {
			logger.Get().Error("failed to delete expense",
				zap.String("expense_id", id),
				zap.Error(err))
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully", "deletedExpense": deleted})
}
