package curriculum

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedContentMajor is the content document major version this build reads.
const SupportedContentMajor = "v1"

// document is the on-disk shape of a content file.
type document struct {
	Version  string              `yaml:"version"`
	Grades   map[string][]string `yaml:"grades"`
	Lessons  []Lesson            `yaml:"lessons"`
	Problems []Problem           `yaml:"problems"`
}

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// LoadCatalog reads a YAML content document and builds a Catalog from it.
// When the document has no grades section, DefaultTopicTable is used.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}

	if err := validateContent(raw); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}

	if !semver.IsValid(doc.Version) {
		return nil, fmt.Errorf("content version %q is not a valid semantic version", doc.Version)
	}
	if major := semver.Major(doc.Version); major != SupportedContentMajor {
		return nil, fmt.Errorf("content version %s not supported (want %s.x)", doc.Version, SupportedContentMajor)
	}

	table := DefaultTopicTable()
	if len(doc.Grades) > 0 {
		table = make(map[GradeLevel][]MathTopic, len(doc.Grades))
		for gs, names := range doc.Grades {
			g, err := ParseGrade(gs)
			if err != nil {
				return nil, fmt.Errorf("grades: %w", err)
			}
			topics := make([]MathTopic, 0, len(names))
			for _, n := range names {
				t, err := ParseTopic(n)
				if err != nil {
					return nil, fmt.Errorf("grades[%s]: %w", gs, err)
				}
				topics = append(topics, t)
			}
			table[g] = topics
		}
	}

	for i, l := range doc.Lessons {
		if !l.Topic.Valid() || !l.GradeLevel.Valid() {
			return nil, fmt.Errorf("lessons[%d] %q: invalid topic or grade", i, l.ID)
		}
	}
	for i, p := range doc.Problems {
		if !p.Topic.Valid() || !p.GradeLevel.Valid() || p.Difficulty.Index() == 0 {
			return nil, fmt.Errorf("problems[%d] %q: invalid topic, grade or difficulty", i, p.ID)
		}
	}

	return NewCatalog(table, doc.Lessons, doc.Problems), nil
}

// LoadCatalogFile opens path and calls LoadCatalog.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content file: %w", err)
	}
	defer f.Close()

	c, err := LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// validateContent checks the raw YAML against contentSchema.
func validateContent(raw []byte) error {
	var tree any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return fmt.Errorf("parse content: %w", err)
	}

	// The validator expects JSON-shaped values; round-trip through
	// encoding/json to normalize YAML maps and numbers.
	b, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("normalize content: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return fmt.Errorf("normalize content: %w", err)
	}

	schema, err := getContentSchema()
	if err != nil {
		return fmt.Errorf("compile content schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("content schema validation failed: %w", err)
	}
	return nil
}

func getContentSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		defBytes, err := json.Marshal(contentSchema())
		if err != nil {
			compileErr = err
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = err
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://curriculum-content.json"
		if err := c.AddResource(url, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}
