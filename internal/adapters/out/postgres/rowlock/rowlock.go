// Package rowlock locks the rows an aggregate is loaded from when the load
// happens inside a transaction.
//
// Handlers read, decide and write back. Two transactions that read the same
// row without a lock both see the old state and the second write wins, so a
// driver could be started on two routes at once. With FOR UPDATE the second
// reader waits for the first commit and decides on fresh data.
package rowlock

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ForUpdate adds FOR UPDATE to the next query on db when db is a transaction
// handle. Reads on the connection pool are returned unchanged.
func ForUpdate(db *gorm.DB) *gorm.DB {
	if !InTransaction(db) {
		return db
	}
	return db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
}

// InTransaction reports whether db runs on an open transaction.
func InTransaction(db *gorm.DB) bool {
	_, ok := db.Statement.ConnPool.(gorm.TxCommitter)
	return ok
}
