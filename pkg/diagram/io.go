package diagram

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cloudtopo/topograph/pkg/errors"
)

// MarshalDocument serializes a Document to pretty-printed JSON bytes.
func MarshalDocument(d *Document) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// UnmarshalDocument deserializes JSON bytes into a Document and checks
// referential integrity: node IDs must be unique and both edge endpoints
// must reference existing nodes. Parent references are not checked here;
// the layout context drops dangling parent links at construction.
func UnmarshalDocument(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "unmarshal document")
	}

	seen := make(map[string]struct{}, len(d.Nodes))
	for _, n := range d.Nodes {
		if n.ID == "" {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "document contains a node without an id")
		}
		if _, dup := seen[n.ID]; dup {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "duplicate node id %q", n.ID)
		}
		seen[n.ID] = struct{}{}
	}
	for _, e := range d.Edges {
		if _, ok := seen[e.Source]; !ok {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "edge %s: unknown source node %q", e.ID, e.Source)
		}
		if _, ok := seen[e.Target]; !ok {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "edge %s: unknown target node %q", e.ID, e.Target)
		}
	}

	return &d, nil
}

// WriteDocument encodes a Document as indented JSON and writes it to w.
func WriteDocument(d *Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadDocument decodes and validates a Document from r.
func ReadDocument(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return UnmarshalDocument(data)
}

// WriteDocumentFile writes a Document to a JSON file at path.
func WriteDocumentFile(d *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteDocument(d, f)
}

// ReadDocumentFile reads a Document from a JSON file at path.
func ReadDocumentFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "document not found: %s", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalDocument(data)
}
