package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-flexform/internal/cli"
	"github.com/goliatone/go-flexform/pkg/flexmodel"
	"github.com/goliatone/go-flexform/pkg/mapper"
	"github.com/goliatone/go-flexform/pkg/openapi"
	"github.com/goliatone/go-flexform/pkg/widgets"
)

func main() {
	configDir := flag.String("config", "", "directory holding object model documents")
	openapiPath := flag.String("openapi", "", "optional OpenAPI document merged into the model store")
	object := flag.String("object", "", "object whose form is resolved")
	form := flag.String("form", "", "form (layout) name")
	interactive := flag.Bool("interactive", false, "prompt for a missing object or form")
	output := flag.String("output", "", "output file (stdout if empty)")
	kinds := flag.Bool("kinds", false, "print the default widget kind of every data type and exit")
	flag.Parse()

	if *kinds {
		if err := writeKinds(os.Stdout); err != nil {
			log.Fatalf("Failed to list kinds: %v", err)
		}
		return
	}

	ctx := context.Background()

	store, err := loadStore(ctx, strings.TrimSpace(*configDir), strings.TrimSpace(*openapiPath))
	if err != nil {
		log.Fatalf("Failed to load models: %v", err)
	}
	if store.Empty() {
		log.Fatalf("no object models found; pass -config and/or -openapi")
	}

	sel := cli.Selection{Object: strings.TrimSpace(*object), Form: strings.TrimSpace(*form)}
	if *interactive {
		sel, err = cli.Complete(ctx, cli.NewSurveyPicker(), store, sel)
		if errors.Is(err, cli.ErrAborted) {
			os.Exit(1)
		}
		if err != nil {
			log.Fatalf("Failed to select form: %v", err)
		}
	}

	resolver := mapper.New(store, store)
	descriptors, err := resolver.Resolve(mapper.Request{Object: sel.Object, Form: sel.Form})
	if err != nil {
		log.Fatalf("Failed to resolve form: %v", err)
	}

	payload, err := json.MarshalIndent(descriptors, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode descriptors: %v", err)
	}
	payload = append(payload, '\n')

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Descriptors written to %s\n", *output)
		return
	}
	fmt.Print(string(payload))
}

func loadStore(ctx context.Context, configDir, openapiPath string) (*flexmodel.Store, error) {
	var fsys fs.FS
	if configDir != "" {
		fsys = os.DirFS(configDir)
	}
	store, err := flexmodel.LoadFS(fsys)
	if err != nil {
		return nil, err
	}
	if openapiPath == "" {
		return store, nil
	}
	data, err := os.ReadFile(openapiPath)
	if err != nil {
		return nil, fmt.Errorf("read openapi document: %w", err)
	}
	objects, err := openapi.LoadObjects(ctx, data)
	if err != nil {
		return nil, err
	}
	return store.Merge(objects...)
}

// writeKinds prints the data type to widget kind table, one tab separated
// pair per line.
func writeKinds(w io.Writer) error {
	for _, dataType := range flexmodel.DataTypes() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", dataType, widgets.DefaultKind(dataType)); err != nil {
			return err
		}
	}
	return nil
}
