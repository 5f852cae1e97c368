// Package inputmap associates actions with ordered binding lists.
//
// A Map supports lookup, replacement, conflict detection, a single
// in-flight rebind capture, and a JSON document codec whose round trip
// preserves binding lists, their order, and action coverage.
//
// Binding order is display-relevant only; resolution does not depend on
// it. An action with an empty list is unbound and resolves to zero.
package inputmap
