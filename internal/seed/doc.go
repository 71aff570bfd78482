// Package seed generates a reproducible synthetic population of users and
// tasks and writes it to the store in a single transaction.
//
// Generation is split in two steps. BuildPlan is a pure function of a Config,
// the number of statuses, and two injected random streams; it never touches the
// store. Apply writes a plan through a database.Batch. Identical seeds and
// sizes yield identical plans, and on a fresh store identical row ids.
package seed
