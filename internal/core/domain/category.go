package domain

// BudgetCategory is a read-only lookup used to resolve an expense's account
// coding.
type BudgetCategory struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
}
