package flexmodel

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadOption customises LoadFS.
type LoadOption func(*loadConfig)

type loadConfig struct {
	sanitize bool
	labeler  func(string) string
}

// WithRawLabels keeps labels exactly as written in the documents instead of
// stripping markup.
func WithRawLabels() LoadOption {
	return func(cfg *loadConfig) {
		cfg.sanitize = false
	}
}

// WithLabeler overrides the function used to derive labels for fields that
// omit one. Passing nil leaves missing labels empty.
func WithLabeler(labeler func(string) string) LoadOption {
	return func(cfg *loadConfig) {
		cfg.labeler = labeler
	}
}

// LoadFS walks the provided filesystem and parses JSON/YAML model documents.
// When fsys is nil or no documents are present, the returned store is empty.
func LoadFS(fsys fs.FS, options ...LoadOption) (*Store, error) {
	if fsys == nil {
		return NewStore()
	}
	cfg := newLoadConfig(options)

	var objects []Object
	sources := make(map[string]string)
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isModelFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("flexmodel: read %s: %w", path, err)
		}

		parsed, err := decodeObjects(data, path, cfg)
		if err != nil {
			return err
		}
		for _, obj := range parsed {
			if previous, exists := sources[obj.Name]; exists {
				return fmt.Errorf("flexmodel: duplicate object %q (files %s and %s)", obj.Name, previous, path)
			}
			sources[obj.Name] = path
			objects = append(objects, obj)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return NewStore(objects...)
}

// ParseDocument decodes a single JSON or YAML model document into objects
// sorted by name. The source extension selects the decoder, as in LoadFS;
// other sources are tried as JSON, then YAML. Labels are normalised the same
// way LoadFS does.
func ParseDocument(data []byte, source string, options ...LoadOption) ([]Object, error) {
	return decodeObjects(data, source, newLoadConfig(options))
}

func newLoadConfig(options []LoadOption) loadConfig {
	cfg := loadConfig{sanitize: true, labeler: DefaultLabeler}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func decodeObjects(data []byte, source string, cfg loadConfig) ([]Object, error) {
	doc, err := parseDocument(data, source)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(doc.Objects))
	for name := range doc.Objects {
		names = append(names, name)
	}
	sort.Strings(names)

	objects := make([]Object, 0, len(names))
	for _, rawName := range names {
		name := strings.TrimSpace(rawName)
		if name == "" {
			return nil, fmt.Errorf("flexmodel: file %s defines an empty object name", source)
		}
		obj, err := normaliseObject(doc.Objects[rawName], name, source, cfg)
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

type documentFile struct {
	Objects map[string]objectFile `json:"objects" yaml:"objects"`
}

type objectFile struct {
	Fields []FieldSchema       `json:"fields" yaml:"fields"`
	Forms  map[string]formFile `json:"forms" yaml:"forms"`
}

type formFile struct {
	Fields []LayoutEntry `json:"fields" yaml:"fields"`
}

// parseDocument picks the decoder from the source extension. Sources without
// a known extension are tried as JSON first, then YAML.
func parseDocument(data []byte, source string) (documentFile, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("flexmodel: file %s is empty", source)
	}

	var doc documentFile
	switch strings.ToLower(filepath.Ext(source)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("flexmodel: parse %s as JSON: %w", source, err)
		}
		return doc, nil
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("flexmodel: parse %s as YAML: %w", source, err)
		}
		return doc, nil
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("flexmodel: parse %s: invalid JSON or YAML: %w", source, err)
	}
	return doc, nil
}

func normaliseObject(raw objectFile, name, source string, cfg loadConfig) (Object, error) {
	obj := Object{
		Name:   name,
		Fields: make([]FieldSchema, 0, len(raw.Fields)),
		Forms:  make(map[string]FormConfiguration, len(raw.Forms)),
	}

	for idx, field := range raw.Fields {
		field.Name = strings.TrimSpace(field.Name)
		if field.Name == "" {
			return Object{}, fmt.Errorf("flexmodel: object %q (file %s) field %d has no name", name, source, idx)
		}
		field.Label = normaliseLabel(field.Label, field.Name, cfg)
		if field.Options != nil {
			options := make([]Option, len(field.Options))
			for i, opt := range field.Options {
				if cfg.sanitize {
					opt.Label = SanitizeLabel(opt.Label)
				}
				options[i] = opt
			}
			field.Options = options
		}
		obj.Fields = append(obj.Fields, field)
	}

	for formName, form := range raw.Forms {
		trimmed := strings.TrimSpace(formName)
		if trimmed == "" {
			return Object{}, fmt.Errorf("flexmodel: object %q (file %s) defines an empty form name", name, source)
		}
		entries := make([]LayoutEntry, len(form.Fields))
		for idx, entry := range form.Fields {
			entry.FieldName = strings.TrimSpace(entry.FieldName)
			if entry.FieldName == "" {
				return Object{}, fmt.Errorf("flexmodel: object %q (file %s) form %q entry %d has no field name", name, source, trimmed, idx)
			}
			entry.WidgetKind = strings.TrimSpace(entry.WidgetKind)
			entries[idx] = entry
		}
		obj.Forms[trimmed] = FormConfiguration{Name: trimmed, Fields: entries}
	}

	return obj, nil
}

func normaliseLabel(label, name string, cfg loadConfig) string {
	if cfg.sanitize {
		label = SanitizeLabel(label)
	}
	if label == "" && cfg.labeler != nil {
		label = cfg.labeler(name)
	}
	return label
}

func isModelFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
