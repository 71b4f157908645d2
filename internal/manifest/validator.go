package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/robot.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of validating a robot.yaml.
type ValidationResult struct {
	// Valid is false when the manifest breaks the schema.
	Valid  bool
	Issues []ValidationIssue
	// Mismatches are schema-valid fields that disagree with the installed
	// robot. Only CheckInstalled fills them.
	Mismatches []ValidationIssue
}

// ValidationIssue is one problem with a robot.yaml field.
type ValidationIssue struct {
	Field   string // robot.yaml field, e.g. "format" or "authors[0].name"; empty for the whole document
	Message string
	Keyword string // failing schema keyword, or "directory"/"stored" for install mismatches
}

// String renders the issue as `field: message`.
func (i ValidationIssue) String() string {
	if i.Field == "" {
		return i.Message
	}
	return i.Field + ": " + i.Message
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("robot.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("robot.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks robot.yaml bytes against the embedded manifest schema.
// A non-nil error means the bytes could not be checked at all (bad YAML or a
// broken schema); schema violations are reported in the result.
func Validate(data []byte) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	// The validator wants JSON types: string-keyed maps and json.Number.
	jsonData, err := json.Marshal(normalizeYAML(doc))
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	issues := fieldIssues(ve)
	if len(issues) == 0 {
		issues = []ValidationIssue{{Message: ve.Error()}}
	}
	return &ValidationResult{Valid: false, Issues: issues}, nil
}

// ValidateFile reads a file and validates it against the manifest schema.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Validate(data)
}

// CheckInstalled validates the robot.yaml in an installed robot directory,
// then cross-checks it against the robot: its name must equal the directory
// name, and a declared format must match the stored description file. The
// format check is skipped when stored is empty.
func CheckInstalled(dir, stored string) (*ValidationResult, error) {
	path := filepath.Join(dir, FileName)
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	result, err := Validate(data)
	if err != nil || !result.Valid {
		return result, err
	}

	var m RobotManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if robot := filepath.Base(dir); m.Name != robot {
		result.Mismatches = append(result.Mismatches, ValidationIssue{
			Field:   "name",
			Message: fmt.Sprintf("%q does not match robot directory %q", m.Name, robot),
			Keyword: "directory",
		})
	}
	if stored != "" && m.Format != "" && "."+m.Format != filepath.Ext(stored) {
		result.Mismatches = append(result.Mismatches, ValidationIssue{
			Field:   "format",
			Message: fmt.Sprintf("declares %s but the robot stores %s", m.Format, filepath.Base(stored)),
			Keyword: "stored",
		})
	}
	return result, nil
}

// fieldIssues flattens the error tree into one issue per offending field.
// Missing and unknown properties are reported against the property itself
// rather than the enclosing object.
func fieldIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	if len(ve.Causes) > 0 {
		var issues []ValidationIssue
		for _, cause := range ve.Causes {
			issues = append(issues, fieldIssues(cause)...)
		}
		return issues
	}
	if ve.ErrorKind == nil {
		return nil
	}

	keyword := ""
	if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
		keyword = kw[len(kw)-1]
	}
	parent := fieldName(ve.InstanceLocation)

	switch k := ve.ErrorKind.(type) {
	case *kind.Required:
		issues := make([]ValidationIssue, 0, len(k.Missing))
		for _, prop := range k.Missing {
			issues = append(issues, ValidationIssue{Field: joinField(parent, prop), Message: "is required", Keyword: keyword})
		}
		return issues
	case *kind.AdditionalProperties:
		issues := make([]ValidationIssue, 0, len(k.Properties))
		for _, prop := range k.Properties {
			issues = append(issues, ValidationIssue{Field: joinField(parent, prop), Message: "is not a robot.yaml field", Keyword: keyword})
		}
		return issues
	}

	return []ValidationIssue{{
		Field:   parent,
		Message: ve.ErrorKind.LocalizedString(printer),
		Keyword: keyword,
	}}
}

// fieldName renders an instance location as a dotted field path with
// indexed list elements, e.g. ["authors", "0", "name"] -> "authors[0].name".
func fieldName(loc []string) string {
	var b strings.Builder
	for _, seg := range loc {
		if _, err := strconv.Atoi(seg); err == nil {
			b.WriteString("[" + seg + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

func joinField(parent, prop string) string {
	if parent == "" {
		return prop
	}
	return parent + "." + prop
}

// normalizeYAML recursively converts YAML-decoded values to JSON-compatible
// types. Non-string map keys (e.g. `1: x`) are stringified.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, v := range val {
			m[k] = normalizeYAML(v)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, v := range val {
			m[fmt.Sprint(k)] = normalizeYAML(v)
		}
		return m
	case []any:
		a := make([]any, len(val))
		for i, v := range val {
			a[i] = normalizeYAML(v)
		}
		return a
	default:
		return val
	}
}

// Summary formats the issue count for display, e.g. "1 issue" or "3 issues".
func (r *ValidationResult) Summary() string {
	if len(r.Issues) == 1 {
		return printer.Sprintf("%d issue", 1)
	}
	return printer.Sprintf("%d issues", len(r.Issues))
}
