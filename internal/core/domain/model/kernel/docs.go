// Package kernel provides core domain primitives for the order management
// system. It implements fundamental building blocks following Domain-Driven
// Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison
//   - PageRequest and OrderBy: value objects describing how a collection page is requested
//   - PageInfo: the pagination metadata attached to every page of results
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are designed to be
// immutable and thread-safe, making them suitable for concurrent use.
package kernel
