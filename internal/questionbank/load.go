package questionbank

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// bankFile is the on-disk representation of a question bank.
type bankFile struct {
	Name      string         `yaml:"name"`
	Questions []questionFile `yaml:"questions"`
}

type questionFile struct {
	ID      string       `yaml:"id"`
	Text    string       `yaml:"text"`
	Options []optionFile `yaml:"options"`
}

type optionFile struct {
	ID       string   `yaml:"id"`
	Text     string   `yaml:"text"`
	Weight   float64  `yaml:"weight"`
	GapTypes []string `yaml:"gap_types"`
}

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// getCompiledSchema compiles bankSchema once.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw bytes.
		defBytes, err := json.Marshal(bankSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://question-bank.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// LoadFile reads a YAML (or JSON) bank file. The bank name defaults to the
// file's base name.
func LoadFile(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bank file: %w", err)
	}
	defer f.Close()

	b, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if b.name == "" {
		b.name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return b, nil
}

// Load parses a bank document, validates it against the bank schema and
// then checks its structure. JSON documents are accepted since YAML is a
// superset of JSON.
func Load(r io.Reader) (*Bank, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}

	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc bankFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}

	questions := make([]Question, 0, len(doc.Questions))
	for _, qf := range doc.Questions {
		q := Question{ID: qf.ID, Text: qf.Text, Options: make([]Option, 0, len(qf.Options))}
		for _, of := range qf.Options {
			o := Option{ID: of.ID, Text: of.Text, Weight: of.Weight}
			for _, t := range of.GapTypes {
				o.GapTypes = append(o.GapTypes, GapType(t))
			}
			q.Options = append(q.Options, o)
		}
		questions = append(questions, q)
	}

	return New(doc.Name, questions)
}

// validateDocument checks raw YAML against bankSchema.
func validateDocument(raw []byte) error {
	var parsed any
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("decode bank: %w", err)
	}
	if parsed == nil {
		return fmt.Errorf("decode bank: empty document")
	}

	// Round-trip through JSON so the validator sees float64 numbers and
	// string-keyed maps only.
	asJSON, err := json.Marshal(parsed)
	if err != nil {
		return fmt.Errorf("normalize bank: %w", err)
	}
	var normalized any
	if err := json.Unmarshal(asJSON, &normalized); err != nil {
		return fmt.Errorf("normalize bank: %w", err)
	}

	compiled, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}
	if err := compiled.Validate(normalized); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
