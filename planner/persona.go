package planner

import (
	_ "embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

//go:embed personas.toml
var personasTOML []byte

// Persona frames a pipeline stage: the model is addressed in this role
// with this goal and backstory.
type Persona struct {
	Name      string `toml:"name"`
	Role      string `toml:"role"`
	Goal      string `toml:"goal"`
	Backstory string `toml:"backstory"`
}

// Personas holds one persona per pipeline stage.
type Personas struct {
	Researcher Persona `toml:"researcher"`
	Itinerary  Persona `toml:"itinerary"`
	Budget     Persona `toml:"budget"`
	Local      Persona `toml:"local"`
	Summarizer Persona `toml:"summarizer"`
}

// LoadPersonas parses the embedded persona definitions.
func LoadPersonas() (*Personas, error) {
	var p Personas
	if err := toml.Unmarshal(personasTOML, &p); err != nil {
		return nil, fmt.Errorf("parse personas: %w", err)
	}
	for _, persona := range []Persona{p.Researcher, p.Itinerary, p.Budget, p.Local, p.Summarizer} {
		if persona.Role == "" || persona.Goal == "" {
			return nil, fmt.Errorf("persona %q missing role or goal", persona.Name)
		}
	}
	return &p, nil
}
