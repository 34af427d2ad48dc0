// Package entity defines the core business entities for the domain layer.
package entity

// Ledger is a read-only snapshot of one owner's entities.
// It is passed by value into the aggregation functions, which never mutate it.
type Ledger struct {
	Accounts     []*Account
	Categories   []*Category
	Transactions []*Transaction
	Budgets      []*Budget
	Goals        []*Goal
}
