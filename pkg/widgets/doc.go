// Package widgets decides which input widget renders a schema field. An
// explicit layout override always wins; otherwise the field's data type is
// looked up in a fixed table. Data types without an entry, BOOLEAN included,
// resolve to KindNone so the rendering framework applies its own default.
package widgets
