package patcher

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// JobsField is the name of the root array holding job records.
const JobsField = "jobs"

// Record is a single job entry. Fields unknown to a rule are kept as is.
type Record map[string]any

// Name returns the job name, or an empty string when it is missing or not a string.
func (r Record) Name() string {
	name, _ := r["name"].(string)
	return name
}

// Object returns the nested JSON object stored under key.
func (r Record) Object(key string) (map[string]any, bool) {
	obj, ok := r[key].(map[string]any)
	return obj, ok
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Document is a parsed jobs file.
type Document struct {
	root map[string]any
	jobs []any
}

// Load reads and validates the jobs file at path.
// It returns the parsed document together with the raw bytes it was parsed from.
func Load(path string) (*Document, []byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := Parse(path, raw)
	if err != nil {
		return nil, nil, err
	}
	return doc, raw, nil
}

// Parse decodes raw into a Document. Numbers are kept as json.Number so that
// large integers (millisecond timestamps) survive a rewrite unchanged.
func Parse(path string, raw []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &ParseError{Path: path, Err: errors.New("unexpected data after top-level value")}
	}

	obj, ok := root.(map[string]any)
	if !ok {
		return nil, &SchemaError{Path: path, Reason: "root is not an object"}
	}

	rawJobs, present := obj[JobsField]
	if !present || rawJobs == nil {
		return nil, &SchemaError{Path: path, Reason: "jobs field is missing"}
	}
	jobs, ok := rawJobs.([]any)
	if !ok {
		return nil, &SchemaError{Path: path, Reason: "jobs field is not an array"}
	}
	for i, job := range jobs {
		if _, ok := job.(map[string]any); !ok {
			return nil, &SchemaError{Path: path, Reason: fmt.Sprintf("jobs[%d] is not an object", i)}
		}
	}

	return &Document{root: obj, jobs: jobs}, nil
}

// Len returns the number of job records.
func (d *Document) Len() int {
	return len(d.jobs)
}

// Record returns the i-th job record.
func (d *Document) Record(i int) Record {
	return Record(d.jobs[i].(map[string]any))
}

// Records returns all job records in file order.
func (d *Document) Records() []Record {
	out := make([]Record, len(d.jobs))
	for i := range d.jobs {
		out[i] = d.Record(i)
	}
	return out
}

// SetRecord replaces the i-th job record.
func (d *Document) SetRecord(i int, rec Record) {
	d.jobs[i] = map[string]any(rec)
}

// Marshal encodes the document indented by two spaces with a trailing newline.
func (d *Document) Marshal() ([]byte, error) {
	d.root[JobsField] = d.jobs

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d.root); err != nil {
		return nil, fmt.Errorf("encode jobs document: %w", err)
	}
	return buf.Bytes(), nil
}
