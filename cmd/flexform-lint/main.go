package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-flexform/pkg/flexmodel"
	"github.com/goliatone/go-flexform/pkg/mapper"
	"github.com/goliatone/go-flexform/pkg/widgets"
)

type violation struct {
	file     string
	location string
	message  string
}

func main() {
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [paths...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nLint flexform model documents: every form entry must resolve.\n"); err != nil {
			panic(err)
		}
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var violations []violation
	for _, path := range paths {
		linted, err := lintPath(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		violations = append(violations, linted...)
	}

	if len(violations) > 0 {
		sortViolations(violations)
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "%s: %s -> %s\n", v.file, v.location, v.message)
		}
		os.Exit(1)
	}
}

func lintPath(path string) ([]violation, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	var store *flexmodel.Store
	if info.IsDir() {
		store, err = flexmodel.LoadFS(os.DirFS(path))
		if err != nil {
			return nil, err
		}
	} else {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		objects, err := flexmodel.ParseDocument(raw, path)
		if err != nil {
			return nil, err
		}
		store, err = flexmodel.NewStore(objects...)
		if err != nil {
			return nil, err
		}
	}

	return lintStore(path, store), nil
}

// lintStore resolves every entry of every form, collecting failures instead
// of stopping at the first one.
func lintStore(file string, store *flexmodel.Store) []violation {
	resolver := mapper.New(store, store)
	known := make(map[widgets.Kind]struct{})
	for _, kind := range widgets.Kinds() {
		known[kind] = struct{}{}
	}

	var result []violation
	for _, objectName := range store.Objects() {
		for _, formName := range store.FormNames(objectName) {
			form, _ := store.Form(objectName, formName)
			for idx, entry := range form.Fields {
				location := fmt.Sprintf("%s.forms.%s.fields[%d]", objectName, formName, idx)
				if strings.TrimSpace(entry.FieldName) == "" {
					result = append(result, violation{file: file, location: location, message: "entry has no field name"})
					continue
				}
				descriptor, err := resolver.ResolveEntry(objectName, entry)
				if err != nil {
					result = append(result, violation{file: file, location: location, message: describe(err)})
					continue
				}
				if descriptor.Widget == widgets.KindNone {
					continue
				}
				if _, ok := known[descriptor.Widget]; !ok {
					result = append(result, violation{
						file:     file,
						location: location,
						message:  fmt.Sprintf("unknown widget kind %q", descriptor.Widget),
					})
				}
			}
		}
	}
	return result
}

func describe(err error) string {
	var resolution *mapper.ResolutionError
	if !errors.As(err, &resolution) {
		return err.Error()
	}
	switch {
	case errors.Is(err, mapper.ErrUnknownField):
		return fmt.Sprintf("unknown field %q", resolution.Field)
	case errors.Is(err, mapper.ErrUnknownValidator):
		return fmt.Sprintf("field %q uses unknown validator %q", resolution.Field, resolution.Validator)
	default:
		return fmt.Sprintf("field %q: %v", resolution.Field, resolution.Err)
	}
}

func sortViolations(violations []violation) {
	sort.Slice(violations, func(i, j int) bool {
		if violations[i].file == violations[j].file {
			if violations[i].location == violations[j].location {
				return violations[i].message < violations[j].message
			}
			return violations[i].location < violations[j].location
		}
		return violations[i].file < violations[j].file
	})
}
