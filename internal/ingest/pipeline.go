package ingest

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cantolabs/fourcorner-cli/internal/core/domain"
	"github.com/cantolabs/fourcorner-cli/internal/index"
	"github.com/cantolabs/fourcorner-cli/internal/logger"
)

// State is the ingestion lifecycle state.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// Result is the outcome of one successful ingestion run. The index it
// carries is complete and never mutated again.
type Result struct {
	// Index is the freshly built prefix index.
	Index *index.Trie

	// Accepted is the number of rows that passed validation. Zero is a
	// valid outcome: only detection failure is fatal, not empty data.
	Accepted int

	// CodeColumn is the detected classification-code column.
	CodeColumn int

	// RunID identifies this ingestion run in logs.
	RunID string
}

// Pipeline turns raw dataset text into a Result. A Pipeline is single
// use per Run call; it holds no state between runs, so every run starts
// clean and no error from one dataset leaks into the next.
type Pipeline struct {
	delimiter string
	state     State
}

// NewPipeline creates a pipeline splitting rows on the given delimiter.
func NewPipeline(delimiter string) *Pipeline {
	if delimiter == "" {
		delimiter = "|"
	}
	return &Pipeline{
		delimiter: delimiter,
		state:     StateIdle,
	}
}

// State returns the current lifecycle state.
func (p *Pipeline) State() State {
	return p.state
}

// Run consumes the whole raw text in one pass: detect the code column,
// validate every row, insert accepted records into a new index. On any
// failure — including a panic from malformed input — no partial index
// is produced and the error tells the consumer to supply the dataset
// manually.
func (p *Pipeline) Run(raw string) (result *Result, err error) {
	p.state = StateLoading

	// Parsing must never take the process down; convert panics into an
	// ordinary run failure at the pipeline boundary.
	defer func() {
		if r := recover(); r != nil {
			p.state = StateFailed
			result = nil
			err = fmt.Errorf("unexpected parse failure: %v", r)
		}
	}()

	runID := uuid.NewString()
	logger.Section("Ingestion")
	logger.Debug("Run %s: %d bytes of raw text", runID, len(raw))

	lines := splitLines(raw)
	logger.Debug("Run %s: %d non-blank lines", runID, len(lines))

	codeCol, err := DetectCodeColumn(lines, p.delimiter)
	if err != nil {
		p.state = StateFailed
		return nil, fmt.Errorf("detect code column: %w", err)
	}

	cm := domain.DefaultColumnMap(codeCol)

	idx := index.New()
	accepted := 0
	for _, line := range lines {
		rec, ok := ParseRow(line, p.delimiter, cm)
		if !ok {
			continue
		}
		idx.Insert(rec.Code, rec)
		accepted++
	}

	p.state = StateReady
	logger.Info("Run %s: accepted %d records (code column %d)", runID, accepted, codeCol)

	return &Result{
		Index:      idx,
		Accepted:   accepted,
		CodeColumn: codeCol,
		RunID:      runID,
	}, nil
}

// splitLines splits raw text into trimmed, non-blank lines.
func splitLines(raw string) []string {
	parts := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(parts))
	for _, part := range parts {
		line := strings.TrimSpace(part)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
