// Package flexmodel describes the declarative model configuration consumed by
// the field mapper: objects, their field schemas, and the named form layouts
// that pick and override those fields. The package only carries data; it never
// renders or validates. A Store loaded from JSON/YAML documents satisfies both
// the SchemaLookup and LayoutLookup contracts, but callers can back those
// interfaces with any registry they already own.
package flexmodel
