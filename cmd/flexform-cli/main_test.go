package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteKinds(t *testing.T) {
	var buf bytes.Buffer
	if err := writeKinds(&buf); err != nil {
		t.Fatalf("write kinds: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	want := []string{
		"BOOLEAN\tnone",
		"DATE\tdate",
		"DATEINTERVAL\tplain-text",
		"DATETIME\tdate-time",
		"DECIMAL\tnumber",
		"FILE\tfile",
		"FLOAT\tnumber",
		"INTEGER\tinteger",
		"SET\tchoice",
		"TEXT\tmultiline-text",
		"HTML\tmultiline-text",
		"JSON\tmultiline-text",
		"VARCHAR\tplain-text",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadStore_MergesOpenAPI(t *testing.T) {
	store, err := loadStore(
		context.Background(),
		filepath.Join("..", "..", "pkg", "flexmodel", "testdata", "basic"),
		filepath.Join("..", "..", "pkg", "openapi", "testdata", "tickets.yaml"),
	)
	if err == nil {
		t.Fatalf("expected collision between model Ticket and OpenAPI Ticket, got %v", store.Objects())
	}

	store, err = loadStore(context.Background(), "", filepath.Join("..", "..", "pkg", "openapi", "testdata", "tickets.yaml"))
	if err != nil {
		t.Fatalf("load openapi only: %v", err)
	}
	if diff := cmp.Diff([]string{"Owner", "Ticket"}, store.Objects()); diff != "" {
		t.Fatalf("objects mismatch (-want +got):\n%s", diff)
	}
}
