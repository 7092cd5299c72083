package document

import (
	"gopkg.in/yaml.v3"

	forgeerr "github.com/uiforge/forge/pkg/errors"
)

// Encode renders the project as its persisted YAML document. Decoding the
// result yields a semantically equivalent project (same widgets, same field
// values, same order); byte-identical text is not promised.
func Encode(p *Project) ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, forgeerr.New("document.Encode", forgeerr.KindDecode, err)
	}
	return data, nil
}

// Decode parses a persisted project document. On failure the caller's
// current project is untouched; Decode returns a fresh value or an error,
// never a partial document.
func Decode(data []byte) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, forgeerr.New("document.Decode", forgeerr.KindDecode, err)
	}
	// Continue ID numbering above anything the document carries.
	p.nextID = p.maxID() + 1
	return &p, nil
}
