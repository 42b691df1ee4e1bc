package flexmodel

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Store keeps object definitions indexed for lookup. It is safe for
// concurrent readers when treated as immutable after construction.
type Store struct {
	objects map[string]Object
	fields  map[string]map[string]FieldSchema
}

var (
	_ SchemaLookup = (*Store)(nil)
	_ LayoutLookup = (*Store)(nil)
)

// NewStore indexes the supplied objects. Empty or duplicate object names and
// duplicate field names within an object are rejected.
func NewStore(objects ...Object) (*Store, error) {
	store := &Store{
		objects: make(map[string]Object, len(objects)),
		fields:  make(map[string]map[string]FieldSchema, len(objects)),
	}
	for _, obj := range objects {
		if err := store.add(obj); err != nil {
			return nil, err
		}
	}
	return store, nil
}

func (s *Store) add(obj Object) error {
	name := strings.TrimSpace(obj.Name)
	if name == "" {
		return errors.New("flexmodel: object name is required")
	}
	if _, exists := s.objects[name]; exists {
		return fmt.Errorf("flexmodel: duplicate object %q", name)
	}

	index := make(map[string]FieldSchema, len(obj.Fields))
	for idx, field := range obj.Fields {
		if field.Name == "" {
			return fmt.Errorf("flexmodel: object %q field %d has no name", name, idx)
		}
		if _, exists := index[field.Name]; exists {
			return fmt.Errorf("flexmodel: object %q defines duplicate field %q", name, field.Name)
		}
		index[field.Name] = field
	}

	forms := make(map[string]FormConfiguration, len(obj.Forms))
	for formName, form := range obj.Forms {
		if form.Name == "" {
			form.Name = formName
		}
		forms[formName] = form
	}

	obj.Name = name
	obj.Forms = forms
	s.objects[name] = obj
	s.fields[name] = index
	return nil
}

// Field implements SchemaLookup.
func (s *Store) Field(object, field string) (FieldSchema, bool) {
	if s == nil {
		return FieldSchema{}, false
	}
	schema, ok := s.fields[object][field]
	return schema, ok
}

// Form implements LayoutLookup.
func (s *Store) Form(object, form string) (FormConfiguration, bool) {
	if s == nil {
		return FormConfiguration{}, false
	}
	obj, ok := s.objects[object]
	if !ok {
		return FormConfiguration{}, false
	}
	cfg, ok := obj.Forms[form]
	return cfg, ok
}

// Object returns the object definition registered under name.
func (s *Store) Object(name string) (Object, bool) {
	if s == nil {
		return Object{}, false
	}
	obj, ok := s.objects[name]
	return obj, ok
}

// Objects returns the registered object names in sorted order.
func (s *Store) Objects() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.objects))
	for name := range s.objects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormNames returns the form names of an object in sorted order.
func (s *Store) FormNames(object string) []string {
	if s == nil {
		return nil
	}
	obj, ok := s.objects[object]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(obj.Forms))
	for name := range obj.Forms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any objects.
func (s *Store) Empty() bool {
	return s == nil || len(s.objects) == 0
}

// Merge returns a new store holding the objects of s followed by extra.
// Object name collisions are errors.
func (s *Store) Merge(extra ...Object) (*Store, error) {
	objects := make([]Object, 0, len(extra))
	for _, name := range s.Objects() {
		objects = append(objects, s.objects[name])
	}
	objects = append(objects, extra...)
	return NewStore(objects...)
}
