// Package handlers wires the HTTP surface to the auth service and the expense
// store. Each handler binds a typed request, performs one service or store
// call and translates failures through the apperror taxonomy.
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/bodeppav/New-Expense-Tracker-Backend/apperror"
	"github.com/bodeppav/New-Expense-Tracker-Backend/auth"
	"github.com/bodeppav/New-Expense-Tracker-Backend/models"
)

// ExpenseStore is the persistence the expense handlers need.
type ExpenseStore interface {
	CreateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error)
	ListExpenses(ctx context.Context, userID string) ([]models.Expense, error)
	UpdateExpense(ctx context.Context, id, title string, amount float64, date, category string) (*models.Expense, error)
	DeleteExpense(ctx context.Context, id string) (*models.Expense, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth     *auth.Service
	expenses ExpenseStore
	health   Pinger
}

func New(authService *auth.Service, expenses ExpenseStore, health Pinger) *Handler {
	return &Handler{
		auth:     authService,
		expenses: expenses,
		health:   health,
	}
}

// respondError maps any error to its HTTP status and a JSON body with a
// message field, which every response of this API carries.
func respondError(c *gin.Context, err error) {
	appErr := apperror.FromError(err)
	c.JSON(appErr.StatusCode(), gin.H{"message": appErr.Message})
}
