// Package kernel provides the primitives shared by every aggregate of the
// food delivery domain: UUID identifiers and the Role of the acting party.
// Both are immutable value objects and safe for concurrent use.
package kernel
