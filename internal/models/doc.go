// Package models defines the core domain models for Billease.
//
// # Models
//
//   - Participant: a person who can pay for or share expenses
//   - Group: a named partition of participants and expenses
//   - Expense: a single shared cost, with its split policy and splits
//   - Split: one participant's portion of an expense
//   - Balance: a recommended transfer from a debtor to a creditor
//
// # Design Principles
//
// 1. **Plain data**: models carry no behaviour beyond enum validation
// 2. **ID references**: relationships use ID strings instead of pointers
// 3. **Stable JSON**: field names match the persisted records, so state written by
// earlier versions keeps loading
//
// Balances are never persisted. They are derived from the members of a group and
// the expenses that belong to it, and recomputed after every mutation.
package models
