// Package shared holds cross-cutting helpers used by multiple packages.
// Its testutil subpackage provides log capture utilities for tests; it
// carries no domain logic of its own.
package shared
