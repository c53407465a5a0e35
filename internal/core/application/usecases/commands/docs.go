// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every command is built through a validating constructor, so a handler only
// ever sees well-formed input; handlers then run domain logic and persist the
// results through repository ports. There are no transactions: each write is
// independent.
package commands
