package bank

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

// SupportedMajor is the bank format major version this build understands.
const SupportedMajor = "v1"

// ErrInvalidBank wraps every bank loading failure.
var ErrInvalidBank = errors.New("invalid question bank")

//go:embed questions.json
var embeddedBank []byte

//go:embed questions.schema.json
var schemaJSON []byte

const schemaURL = "schema://rtomock/questions.schema.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// Bank is the immutable catalog of questions grouped by difficulty.
type Bank struct {
	version string
	pools   map[Difficulty][]Question
}

type rawBank struct {
	Version string                   `json:"version"`
	Pools   map[string][]rawQuestion `json:"pools"`
}

type rawQuestion struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Correct int      `json:"correct"`
	Image   string   `json:"image,omitempty"`
	Caption string   `json:"caption,omitempty"`
}

// Embedded returns the bank compiled into the binary.
func Embedded() (*Bank, error) {
	return Parse(embeddedBank)
}

// LoadFile reads and validates a bank from disk.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	return Parse(data)
}

// Parse validates raw JSON against the bank schema, checks the format
// version and question invariants, and builds a Bank.
func Parse(data []byte) (*Bank, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: parse JSON: %w", ErrInvalidBank, err)
	}

	schema, err := bankSchema()
	if err != nil {
		return nil, fmt.Errorf("%w: compile schema: %w", ErrInvalidBank, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: schema validation failed: %w", ErrInvalidBank, err)
	}

	var raw rawBank
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidBank, err)
	}

	if err := validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBank, err)
	}

	b := &Bank{
		version: raw.Version,
		pools:   make(map[Difficulty][]Question, len(raw.Pools)),
	}
	for name, pool := range raw.Pools {
		d := Difficulty(name)
		qs := make([]Question, 0, len(pool))
		for _, rq := range pool {
			qs = append(qs, rq.toQuestion())
		}
		b.pools[d] = qs
	}
	return b, nil
}

func (rq rawQuestion) toQuestion() Question {
	var stim Stimulus = TextOnly{}
	if rq.Image != "" {
		stim = RoadSign{Asset: rq.Image, Caption: rq.Caption}
	}
	opts := make([]string, len(rq.Options))
	copy(opts, rq.Options)
	return Question{
		Prompt:       rq.Prompt,
		Options:      opts,
		CorrectIndex: rq.Correct,
		Stimulus:     stim,
	}
}

// validate performs the checks the schema cannot express and returns all
// problems joined together.
func validate(raw rawBank) error {
	var errs []error

	switch {
	case !semver.IsValid(raw.Version):
		errs = append(errs, fmt.Errorf("version %q is not a semantic version", raw.Version))
	case semver.Major(raw.Version) != SupportedMajor:
		errs = append(errs, fmt.Errorf("version %s is not supported (want %s.x.y)", raw.Version, SupportedMajor))
	}

	for _, d := range AllDifficulties() {
		pool := raw.Pools[string(d)]
		if len(pool) == 0 {
			errs = append(errs, fmt.Errorf("pool %q is empty", d))
			continue
		}
		seen := make(map[string]int, len(pool))
		for i, q := range pool {
			if q.Correct < 0 || q.Correct >= len(q.Options) {
				errs = append(errs, fmt.Errorf("%s[%d]: correct index %d out of range for %d options", d, i, q.Correct, len(q.Options)))
			}
			key := q.Prompt + "\x00" + q.Image
			if prev, dup := seen[key]; dup {
				errs = append(errs, fmt.Errorf("%s[%d]: duplicate of %s[%d]", d, i, d, prev))
			} else {
				seen[key] = i
			}
		}
	}

	return errors.Join(errs...)
}

func bankSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			compileErr = err
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = err
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Version returns the bank format version.
func (b *Bank) Version() string {
	return b.version
}

// PoolSize returns the number of questions available for d.
func (b *Bank) PoolSize(d Difficulty) int {
	return len(b.pools[d])
}

// Pool returns a copy of the questions for d.
func (b *Bank) Pool(d Difficulty) []Question {
	pool := b.pools[d]
	out := make([]Question, len(pool))
	copy(out, pool)
	return out
}
