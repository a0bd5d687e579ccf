package model

// Token is one annotated word of a dependency-parsed sentence.
// All fields are produced by the external parser and never change
// after the sentence is constructed.
type Token struct {
	Index int    `json:"index"`           // Position within the sentence (0-based)
	Text  string `json:"text"`            // Surface form
	Lemma string `json:"lemma"`           // Base form
	POS   string `json:"pos"`             // Coarse part-of-speech (UPOS, e.g. "VERB", "ADP")
	Tag   string `json:"tag"`             // Fine-grained tag (XPOS, e.g. "VBZ", "VBN")
	Dep   string `json:"dep"`             // Dependency label to the head (e.g. "prep", "prt")
	Head  int    `json:"head"`            // Index of the syntactic head; the root's head is its own index
}

// Attr names a matchable token attribute.
type Attr string

const (
	AttrText  Attr = "text"
	AttrLemma Attr = "lemma"
	AttrPOS   Attr = "pos"
	AttrTag   Attr = "tag"
	AttrDep   Attr = "dep"
)

// Get returns the value of the named attribute.
// Unknown attributes return the empty string; the pattern loader
// rejects them before matching ever sees one.
func (t Token) Get(attr Attr) string {
	switch attr {
	case AttrText:
		return t.Text
	case AttrLemma:
		return t.Lemma
	case AttrPOS:
		return t.POS
	case AttrTag:
		return t.Tag
	case AttrDep:
		return t.Dep
	}
	return ""
}

// IsRoot reports whether the token is the root of its sentence's tree.
func (t Token) IsRoot() bool {
	return t.Head == t.Index
}
