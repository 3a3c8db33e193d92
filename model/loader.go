package model

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadDefinition decodes a model definition from YAML. The decoded tables
// are checked for the structural errors New would reject, so callers get one
// error path for malformed files.
func LoadDefinition(r io.Reader) (Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return Definition{}, fmt.Errorf("decode model definition: %w", err)
	}
	if def.Name == "" {
		return Definition{}, fmt.Errorf("model definition has no name")
	}
	if def.LedCount <= 0 || def.LedCount > ABSOLUTE_MAX_LED {
		return Definition{}, fmt.Errorf("model %q: led count %d out of range", def.Name, def.LedCount)
	}
	if def.FaceCount <= 0 || len(def.Faces) != def.FaceCount {
		return Definition{}, fmt.Errorf("model %q: face count %d does not match %d face records",
			def.Name, def.FaceCount, len(def.Faces))
	}
	return def, nil
}

// LoadDefinitionFile reads and decodes a definition from disk.
func LoadDefinitionFile(path string) (Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return Definition{}, err
	}
	defer f.Close()
	return LoadDefinition(f)
}

// SaveDefinition writes a definition back out as YAML, for tooling that
// regenerates or fixes up model files.
func SaveDefinition(w io.Writer, def Definition) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(def)
}
