// Package resolve implements the template inheritance resolution: base
// chain walking with cycle detection, the ordered string-level equation
// rewriting and the field-level variable metadata merge with role
// classification.
//
// Equation rewriting is deliberately literal - patterns are opaque
// substrings, never parsed expressions, which diamond inheritance of the
// model templates relies on.
package resolve
