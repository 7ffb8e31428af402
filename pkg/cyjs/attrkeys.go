package cyjs

import "github.com/matzehuels/cyjs/pkg/errors"

// AttrKeys names the attribute fields that hold each role's value inside node
// and edge attributes. Empty fields fall back to [DefaultAttrKeys], so a
// partial mapping such as AttrKeys{Name: "label"} only overrides the name
// role.
//
// ID is accepted for compatibility with other Cytoscape tooling but is not
// consulted: node records always carry the stringified node identifier
// under "id".
type AttrKeys struct {
	Source string
	Target string
	Name   string
	ID     string
}

// DefaultAttrKeys returns the default mapping, where every role is looked up
// under its own name.
func DefaultAttrKeys() AttrKeys {
	return AttrKeys{
		Source: KeySource,
		Target: KeyTarget,
		Name:   KeyName,
		ID:     KeyID,
	}
}

// Resolve returns k with every empty field replaced by its default.
func (k AttrKeys) Resolve() AttrKeys {
	d := DefaultAttrKeys()
	if k.Source != "" {
		d.Source = k.Source
	}
	if k.Target != "" {
		d.Target = k.Target
	}
	if k.Name != "" {
		d.Name = k.Name
	}
	if k.ID != "" {
		d.ID = k.ID
	}
	return d
}

// Validate returns a *errors.ConfigurationError unless the resolved source,
// target, and name fields are three distinct names.
func (k AttrKeys) Validate() error {
	r := k.Resolve()
	if r.Source == r.Target || r.Source == r.Name || r.Target == r.Name {
		return &errors.ConfigurationError{Source: r.Source, Target: r.Target, Name: r.Name}
	}
	return nil
}
