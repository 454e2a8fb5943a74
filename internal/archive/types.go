// Package archive stores palettes of swatch PNGs in a single SQLite file.
package archive

// Metadata describes an archive. Empty fields are not stored.
type Metadata struct {
	Name        string // Human-readable archive name
	Description string
	Kind        string // Scheme kind that produced the palettes
	Seed        string // Seed color as hex
	Version     string
}

// ToMap converts Metadata to name/value rows.
func (m Metadata) ToMap() map[string]string {
	result := make(map[string]string)
	for key, value := range map[string]string{
		"name":        m.Name,
		"description": m.Description,
		"kind":        m.Kind,
		"seed":        m.Seed,
		"version":     m.Version,
	} {
		if value != "" {
			result[key] = value
		}
	}
	return result
}

func metadataFromMap(m map[string]string) Metadata {
	return Metadata{
		Name:        m["name"],
		Description: m["description"],
		Kind:        m["kind"],
		Seed:        m["seed"],
		Version:     m["version"],
	}
}

// Entry is one stored swatch.
type Entry struct {
	Palette  string
	Hex      string
	Position int
}
