package storage

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema/daylily.schema.json
var embeddedSchema []byte

const schemaURL = "https://daylily.gallery/schemas/v1/daylily.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaInitErr  error
)

// ValidationError describes one problem found on one line of a dataset.
type ValidationError struct {
	Line    int    `json:"line"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (e ValidationError) String() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Path, e.Message)
}

func getCompiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var schemaDoc interface{}
		if err := json.Unmarshal(embeddedSchema, &schemaDoc); err != nil {
			schemaInitErr = fmt.Errorf("failed to parse embedded schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, schemaDoc); err != nil {
			schemaInitErr = fmt.Errorf("failed to add schema resource: %w", err)
			return
		}

		var err error
		compiledSchema, err = compiler.Compile(schemaURL)
		if err != nil {
			schemaInitErr = fmt.Errorf("failed to compile schema: %w", err)
		}
	})

	if schemaInitErr != nil {
		return nil, schemaInitErr
	}
	return compiledSchema, nil
}

// Validate checks every non-blank line of the dataset against the record
// schema. Unlike ReadAll it does not stop at the first bad line. The error
// return is reserved for I/O and schema problems.
func (s *Dataset) Validate() ([]ValidationError, error) {
	schema, err := getCompiledSchema()
	if err != nil {
		return nil, err
	}

	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	var problems []ValidationError
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var doc interface{}
		if err := json.Unmarshal(line, &doc); err != nil {
			problems = append(problems, ValidationError{
				Line:    lineNum,
				Path:    "/",
				Message: fmt.Sprintf("invalid JSON: %v", err),
			})
			continue
		}

		if err := schema.Validate(doc); err != nil {
			var detailed *jsonschema.ValidationError
			if ve, ok := err.(*jsonschema.ValidationError); ok {
				detailed = ve
			}
			if detailed == nil {
				problems = append(problems, ValidationError{Line: lineNum, Path: "/", Message: err.Error()})
				continue
			}
			problems = append(problems, convertValidationErrors(lineNum, detailed)...)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dataset: %w", err)
	}

	return problems, nil
}

// convertValidationErrors flattens the error tree to its leaves.
func convertValidationErrors(line int, err *jsonschema.ValidationError) []ValidationError {
	if len(err.Causes) == 0 {
		return []ValidationError{{
			Line:    line,
			Path:    formatInstanceLocation(err.InstanceLocation),
			Message: leafMessage(err.Error()),
		}}
	}

	var errors []ValidationError
	for _, cause := range err.Causes {
		errors = append(errors, convertValidationErrors(line, cause)...)
	}
	return errors
}

func formatInstanceLocation(loc []string) string {
	if len(loc) == 0 {
		return "/"
	}
	return "/" + strings.Join(loc, "/")
}

// leafMessage keeps the last line of a rendered error and drops its
// "at '<path>':" prefix, which is reported separately.
func leafMessage(msg string) string {
	lines := strings.Split(strings.TrimSpace(msg), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	last = strings.TrimPrefix(last, "- ")
	if strings.HasPrefix(last, "at '") {
		if i := strings.Index(last, "': "); i >= 0 {
			last = last[i+3:]
		}
	}
	return last
}
