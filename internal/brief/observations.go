package brief

import (
	"encoding/json"
	"fmt"
	"os"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// Observation is one externally supplied item of research input.
// Consumed once per invocation, never persisted.
type Observation struct {
	Topic   string `json:"topic"`
	Company string `json:"company"`
	Source  string `json:"source"`
	URL     string `json:"url"`
	Summary string `json:"summary"`
}

// InputError reports an observations file that is not a well-formed
// JSON array of observation objects.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("bad observations file %s: %s", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// observationsSchema validates the shape of the analyze input.
const observationsSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "topic": {"type": "string"},
      "company": {"type": "string"},
      "source": {"type": "string"},
      "url": {"type": "string"},
      "summary": {"type": "string"}
    },
    "required": ["topic", "company", "source", "url", "summary"],
    "additionalProperties": false
  }
}`

var compiledSchema = jsonschema.MustCompileString("observations.json", observationsSchema)

// LoadObservations reads and validates a JSON array of observations.
func LoadObservations(path string) ([]Observation, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	return ParseObservations(path, b)
}

// ParseObservations validates raw JSON against the observations
// schema and decodes it.
func ParseObservations(path string, b []byte) ([]Observation, error) {
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	if err := compiledSchema.Validate(raw); err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	var obs []Observation
	if err := json.Unmarshal(b, &obs); err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	return obs, nil
}
