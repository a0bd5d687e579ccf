package model

import "encoding/json"

// Document is an ordered list of parsed sentences from one input.
// This is also the schema persisted by the parse cache.
type Document struct {
	Source    string      `json:"source,omitempty"` // Input path or "stdin"
	Sentences []*Sentence `json:"sentences"`
}

// UnmarshalDocument decodes a cached document and rebuilds the derived
// sentence indices, which are not stored.
func UnmarshalDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	for _, sent := range doc.Sentences {
		*sent = *NewSentence(sent.Text, sent.Tokens)
	}
	return &doc, nil
}

// MarshalDocument encodes a document for the parse cache.
func MarshalDocument(doc *Document) ([]byte, error) {
	return json.Marshal(doc)
}
