package main

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLintPath_ReportsEveryViolation(t *testing.T) {
	path := filepath.Join("testdata", "broken.yaml")

	got, err := lintPath(path)
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	sortViolations(got)

	want := []violation{
		{file: path, location: "Invoice.forms.edit.fields[0]", message: `field "number" uses unknown validator "Checksum"`},
		{file: path, location: "Invoice.forms.edit.fields[1]", message: `unknown widget kind "wysiwyg"`},
		{file: path, location: "Invoice.forms.edit.fields[2]", message: `unknown field "total"`},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(violation{})); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
}

func TestLintPath_Directory(t *testing.T) {
	got, err := lintPath(filepath.Join("..", "..", "pkg", "flexmodel", "testdata", "basic"))
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected clean fixtures, got %+v", got)
	}
}

func TestLintPath_Missing(t *testing.T) {
	if _, err := lintPath(filepath.Join("testdata", "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing path")
	}
}
