package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/samber/lo"
)

// Amount types for an expense entry.
const (
	AmountTypeCredit = "credit"
	AmountTypeDebit  = "debit"
)

// Expense is one ledger entry.
type Expense struct {
	ID         int64   `json:"id,omitempty"`
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	AmountType string  `json:"amount_type"`
	Date       string  `json:"date"`
}

// Totals summarizes a list of expenses the way the dashboard shows them.
type Totals struct {
	Credit  float64
	Debit   float64
	Balance float64
}

// Summarize computes credit and debit sums and the resulting balance.
func Summarize(expenses []Expense) Totals {
	credit := lo.SumBy(
		lo.Filter(expenses, func(e Expense, _ int) bool { return e.AmountType == AmountTypeCredit }),
		func(e Expense) float64 { return e.Amount },
	)
	debit := lo.SumBy(
		lo.Filter(expenses, func(e Expense, _ int) bool { return e.AmountType == AmountTypeDebit }),
		func(e Expense) float64 { return e.Amount },
	)

	return Totals{
		Credit:  credit,
		Debit:   debit,
		Balance: credit - debit,
	}
}

// Expenses lists all expenses of the authenticated user.
func (c *Client) Expenses(ctx context.Context, s *Session) ([]Expense, error) {
	var resp []Expense
	if err := c.doJSON(ctx, http.MethodGet, "/getexpense", s.Token, nil, &resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// AddExpense creates a new expense entry.
func (c *Client) AddExpense(ctx context.Context, s *Session, e Expense) error {
	return c.doJSON(ctx, http.MethodPost, "/addexpense", s.Token, e, nil)
}

// ExpenseUpdate carries a partial update; zero fields are left unchanged.
type ExpenseUpdate struct {
	Category string  `json:"category,omitempty"`
	Amount   float64 `json:"amount,omitempty"`
	Date     string  `json:"date,omitempty"`
}

// UpdateExpense applies a partial update to the expense with the given id.
func (c *Client) UpdateExpense(ctx context.Context, s *Session, id int64, upd ExpenseUpdate) error {
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/update_expense/%d", id), s.Token, upd, nil)
}

// DeleteExpense removes the expense with the given id.
func (c *Client) DeleteExpense(ctx context.Context, s *Session, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/delete_expense/%d", id), s.Token, nil, nil)
}
