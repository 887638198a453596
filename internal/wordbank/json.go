package wordbank

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/tidwall/gjson"

	"github.com/abhisek/vocabquiz/internal/quiz"
)

// wordFileSchema describes {category: {definition: answer}}. Null values are
// allowed and skipped later, like empty strings.
var wordFileSchema = map[string]any{
	"type": "object",
	"additionalProperties": map[string]any{
		"type": []any{"object", "null"},
		"additionalProperties": map[string]any{
			"type": []any{"string", "null"},
		},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// JSONFile is a word bank stored as a single JSON document.
type JSONFile struct {
	Path string
}

// NewJSONFile returns a JSON file source.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{Path: path}
}

func (j *JSONFile) String() string {
	return "json:" + j.Path
}

// Load reads and parses the file.
func (j *JSONFile) Load(ctx context.Context) (quiz.RawData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(j.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", j.Path, err)
	}
	return ParseJSON(data)
}

// ParseJSON validates a word bank document and flattens it into RawData,
// keeping categories and entries in document order.
func ParseJSON(data []byte) (quiz.RawData, error) {
	if err := validateWordFile(data); err != nil {
		return nil, err
	}

	// A repeated key keeps its first position and takes the last value,
	// the same result a JSON object decode gives.
	var raw quiz.RawData
	catIdx := make(map[string]int)
	gjson.ParseBytes(data).ForEach(func(name, pairs gjson.Result) bool {
		cat := quiz.CategoryData{Name: name.String(), Entries: parseEntries(pairs)}
		if i, seen := catIdx[cat.Name]; seen {
			raw[i] = cat
			return true
		}
		catIdx[cat.Name] = len(raw)
		raw = append(raw, cat)
		return true
	})
	return raw, nil
}

func parseEntries(pairs gjson.Result) []quiz.Entry {
	if !pairs.IsObject() {
		return nil
	}
	var entries []quiz.Entry
	defIdx := make(map[string]int)
	pairs.ForEach(func(def, ans gjson.Result) bool {
		e := quiz.Entry{Definition: def.String(), Answer: ans.String()}
		if i, seen := defIdx[e.Definition]; seen {
			entries[i] = e
			return true
		}
		defIdx[e.Definition] = len(entries)
		entries = append(entries, e)
		return true
	})
	return entries
}

// validateWordFile checks the document shape before it is flattened.
func validateWordFile(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := wordSchema()
	if err != nil {
		return fmt.Errorf("compile word file schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("word file schema validation failed: %w", err)
	}
	return nil
}

func wordSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		const url = "schema://word-file.json"
		if err := c.AddResource(url, wordFileSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(url)
	})
	return compiled, compileErr
}
