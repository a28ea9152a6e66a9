// Package moneytracker implements a single-user personal finance ledger.
//
// A Ledger records income and expense transactions in insertion order and
// maintains a running balance: the sum of incomes minus the sum of expenses.
// The ledger is persisted after every change to a Store, the FileStore
// keeping it in a human readable JSONL file:
//
//	{"command":"init","format":"moneytracker","version":1}
//	{"command":"income","amount":1000,"description":"Paycheck"}
//	{"command":"expense","amount":400,"description":"Rent"}
//
// The balance is never persisted, it is recomputed when the ledger is opened.
// A ledger file that cannot be decoded is moved aside to a ".backup" file and
// an empty ledger is started instead, so that the program can always run.
//
// This package serves as the foundational logic for the `mm` command-line
// tool.
package moneytracker
