package wordbank

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/vocabquiz/internal/quiz"
)

// catalogEntry is the on-disk shape of one image question:
//
//   - category: Scenery
//     prompt: Label the picture
//     image: assets/scene.png
//     blanks:
//       - {x: 12, y: 30, answer: sun}
//       - {x: 55, y: 8, answer: sky, width: 90px}
type catalogEntry struct {
	Category string        `yaml:"category"`
	Prompt   string        `yaml:"prompt"`
	Image    string        `yaml:"image"`
	Blanks   []catalogSpot `yaml:"blanks"`
}

type catalogSpot struct {
	X      float64   `yaml:"x"`
	Y      float64   `yaml:"y"`
	Answer string    `yaml:"answer"`
	Width  yaml.Node `yaml:"width"`
}

// LoadCatalog reads the multi-blank question catalog. An empty path yields
// no records.
func LoadCatalog(path string) ([]quiz.MultiBlankRecord, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML catalog document.
func ParseCatalog(data []byte) ([]quiz.MultiBlankRecord, error) {
	var entries []catalogEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	records := make([]quiz.MultiBlankRecord, 0, len(entries))
	for i, e := range entries {
		rec := quiz.MultiBlankRecord{
			Category: e.Category,
			Prompt:   e.Prompt,
			Image:    e.Image,
		}
		for j, s := range e.Blanks {
			width, err := widthHint(s.Width)
			if err != nil {
				return nil, fmt.Errorf("catalog entry %d blank %d: %w", i+1, j+1, err)
			}
			rec.Blanks = append(rec.Blanks, quiz.Blank{
				X:      s.X,
				Y:      s.Y,
				Answer: s.Answer,
				Width:  width,
			})
		}
		records = append(records, rec)
	}
	return records, nil
}

// widthHint accepts a bare number (pixels) or a CSS-like string.
func widthHint(n yaml.Node) (string, error) {
	if n.Kind == 0 {
		return "", nil
	}
	if n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("width must be a number or string")
	}
	if n.Value == "" {
		return "", nil
	}
	if n.Tag == "!!int" || n.Tag == "!!float" {
		if _, err := strconv.ParseFloat(n.Value, 64); err != nil {
			return "", fmt.Errorf("invalid width %q: %w", n.Value, err)
		}
		return n.Value + "px", nil
	}
	return n.Value, nil
}
