package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func expenseServer(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Fatalf("expected bearer token header, got %q", got)
		}

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/getexpense":
			json.NewEncoder(w).Encode([]Expense{
				{ID: 1, Category: "Salary", Amount: 3000, AmountType: AmountTypeCredit, Date: "2025-06-01"},
				{ID: 2, Category: "Rent", Amount: 1200, AmountType: AmountTypeDebit, Date: "2025-06-02"},
				{ID: 3, Category: "Food", Amount: 300, AmountType: AmountTypeDebit, Date: "2025-06-03"},
			})

		case r.Method == http.MethodPost && r.URL.Path == "/addexpense":
			var e Expense
			json.NewDecoder(r.Body).Decode(&e)
			if e.Category == "" || e.Amount <= 0 {
				t.Fatalf("unexpected add payload %+v", e)
			}
			w.WriteHeader(http.StatusOK)

		case r.Method == http.MethodPost && r.URL.Path == "/update_expense/2":
			var upd map[string]any
			json.NewDecoder(r.Body).Decode(&upd)
			if _, ok := upd["amount_type"]; ok {
				t.Fatalf("partial update must not send amount_type: %v", upd)
			}
			w.WriteHeader(http.StatusOK)

		case r.Method == http.MethodDelete && r.URL.Path == "/delete_expense/3":
			w.WriteHeader(http.StatusOK)

		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
}

func TestExpenseCalls(t *testing.T) {
	srv := expenseServer(t)
	defer srv.Close()

	c := NewClient(srv.URL)
	s := &Session{Token: "tok123", Email: "a@b.com"}

	expenses, err := c.Expenses(context.Background(), s)
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if len(expenses) != 3 {
		t.Fatalf("expected 3 expenses, got %d", len(expenses))
	}

	if err := c.AddExpense(context.Background(), s, Expense{
		Category:   "Food",
		Amount:     42.5,
		AmountType: AmountTypeDebit,
		Date:       "2025-06-04",
	}); err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}

	if err := c.UpdateExpense(context.Background(), s, 2, ExpenseUpdate{Amount: 1250}); err != nil {
		t.Fatalf("unexpected update error: %v", err)
	}

	if err := c.DeleteExpense(context.Background(), s, 3); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
}

func TestSummarize(t *testing.T) {
	totals := Summarize([]Expense{
		{Amount: 3000, AmountType: AmountTypeCredit},
		{Amount: 1200, AmountType: AmountTypeDebit},
		{Amount: 300, AmountType: AmountTypeDebit},
	})

	if totals.Credit != 3000 {
		t.Fatalf("expected credit 3000, got %v", totals.Credit)
	}
	if totals.Debit != 1500 {
		t.Fatalf("expected debit 1500, got %v", totals.Debit)
	}
	if totals.Balance != 1500 {
		t.Fatalf("expected balance 1500, got %v", totals.Balance)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	totals := Summarize(nil)
	if totals.Credit != 0 || totals.Debit != 0 || totals.Balance != 0 {
		t.Fatalf("expected zero totals, got %+v", totals)
	}
}
