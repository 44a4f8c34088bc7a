// Package domain contains the core domain entities and value objects for itemd.
//
// This package represents the innermost layer of the Clean Architecture. It has
// no dependencies on infrastructure concerns (HTTP, file system, logging) and
// contains only pure business logic.
//
// # Entities
//
//   - [Item]: A single record with free-form attributes and a processing status
//   - [Status]: The processing state of an item (NEW or PROCESSED)
//   - [BatchError]: The terminal failure of one batch run, wrapping its cause
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Focused on business rules and invariants
//   - Testable without mocks or external systems
package domain
