package memsnapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// errUnknownType is wrapped into NewProcessState's error when a seed
// block names a type id absent from the repository it was built
// against — a malformed fixture, caught at load time rather than left
// for destructure.Run to surface as ErrUnknownTypeID.
var errUnknownType = errors.New("memsnapshot: unknown type id")

// Load decodes one JSON document from r.
func Load(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("memsnapshot: decode: %w", err)
	}

	return &doc, nil
}

// Build constructs a Repository and ProcessState from doc in one step —
// the usual way callers consume a loaded Document.
func Build(doc *Document) (*Repository, *ProcessState, error) {
	repo := NewRepository(doc)
	state, err := NewProcessState(doc, repo)
	if err != nil {
		return nil, nil, err
	}

	return repo, state, nil
}
