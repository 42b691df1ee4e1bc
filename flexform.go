// Package flexform resolves configured form layouts of dynamic objects into
// renderer-neutral field descriptors. It re-exports the common entry points
// of the pkg/ packages for callers that only need the quick path.
package flexform

import (
	"io/fs"

	"github.com/goliatone/go-flexform/pkg/flexmodel"
	"github.com/goliatone/go-flexform/pkg/mapper"
)

// FieldDescriptor aliases mapper.FieldDescriptor.
type FieldDescriptor = mapper.FieldDescriptor

// OptionBag aliases mapper.OptionBag.
type OptionBag = mapper.OptionBag

// Store aliases flexmodel.Store.
type Store = flexmodel.Store

// NewResolver builds a resolver whose schema and layout lookups are both
// served by store.
func NewResolver(store *Store, options ...mapper.Option) *mapper.Resolver {
	return mapper.New(store, store, options...)
}

// LoadFS loads every object model document found in fsys.
func LoadFS(fsys fs.FS, options ...flexmodel.LoadOption) (*Store, error) {
	return flexmodel.LoadFS(fsys, options...)
}

// Resolve loads the models in fsys and resolves the named form of object.
// A form that is not configured yields an empty result.
func Resolve(fsys fs.FS, object, form string, options ...mapper.Option) ([]FieldDescriptor, error) {
	store, err := LoadFS(fsys)
	if err != nil {
		return nil, err
	}
	return NewResolver(store, options...).Resolve(mapper.Request{Object: object, Form: form})
}
