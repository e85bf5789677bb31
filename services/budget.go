package services

// BudgetStatus compares accrued cost against a work order's NTE ceiling.
type BudgetStatus struct {
	Remaining    float64
	IsOverBudget bool
}

// EvaluateBudget returns the remaining budget and the over-budget flag for
// a grand total against an NTE value. An NTE of exactly zero means no
// ceiling has been configured, never a zero budget, so it can never be
// over budget.
func EvaluateBudget(grandTotal, nte float64) BudgetStatus {
	return BudgetStatus{
		Remaining:    nte - grandTotal,
		IsOverBudget: grandTotal > nte && nte > 0,
	}
}
