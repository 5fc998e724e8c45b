// internal/report/distribution.go
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Distribution maps decision labels to counts and remembers the order in which
// labels appeared in the source document, so charts iterate it deterministically.
type Distribution struct {
	labels []string
	counts map[string]int
}

// NewDistribution builds a Distribution from parallel label and count slices.
func NewDistribution(labels []string, counts []int) Distribution {
	var d Distribution
	for i, label := range labels {
		count := 0
		if i < len(counts) {
			count = counts[i]
		}
		d.Set(label, count)
	}
	return d
}

// Set assigns a count to label, appending the label if it is new.
func (d *Distribution) Set(label string, count int) {
	if d.counts == nil {
		d.counts = make(map[string]int)
	}
	if _, ok := d.counts[label]; !ok {
		d.labels = append(d.labels, label)
	}
	d.counts[label] = count
}

// Labels returns the labels in document order.
func (d Distribution) Labels() []string {
	out := make([]string, len(d.labels))
	copy(out, d.labels)
	return out
}

// Count returns the count for label, or 0 when absent.
func (d Distribution) Count(label string) int {
	return d.counts[label]
}

// Counts returns the counts in label order.
func (d Distribution) Counts() []int {
	out := make([]int, len(d.labels))
	for i, label := range d.labels {
		out[i] = d.counts[label]
	}
	return out
}

// Len returns the number of labels.
func (d Distribution) Len() int {
	return len(d.labels)
}

// Total returns the sum of all counts.
func (d Distribution) Total() int {
	total := 0
	for _, c := range d.counts {
		total += c
	}
	return total
}

// UnmarshalJSON decodes a JSON object while keeping its key order.
func (d *Distribution) UnmarshalJSON(data []byte) error {
	d.labels = nil
	d.counts = nil

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decision distribution: expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("decision distribution: unexpected key %v", keyTok)
		}
		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("decision distribution %q: %w", key, err)
		}
		d.Set(key, count)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON encodes the distribution as an object in label order.
func (d Distribution) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range d.labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		fmt.Fprintf(&buf, ":%d", d.counts[label])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
