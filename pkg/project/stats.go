package project

import "github.com/shopspring/decimal"

// BudgetStats are the derived spending figures of the project.
type BudgetStats struct {
	// TotalSpent sums the amounts of all expenses. Paid, Deposit and
	// Pending all count: the figure is committed spend, not cash out.
	TotalSpent decimal.Decimal `json:"totalSpent"`

	// Remaining is the total budget minus TotalSpent. Negative when the
	// project is over budget.
	Remaining decimal.Decimal `json:"remaining"`
}

// BudgetStats derives the spending figures from the current document.
func (m *Manager) BudgetStats() BudgetStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	totalSpent := decimal.Zero
	for _, expense := range m.doc.Expenses {
		totalSpent = totalSpent.Add(expense.Amount)
	}

	return BudgetStats{
		TotalSpent: totalSpent,
		Remaining:  m.doc.Project.TotalBudget.Sub(totalSpent),
	}
}
