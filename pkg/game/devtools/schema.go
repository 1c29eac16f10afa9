package devtools

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"stillnight/pkg/game/dungeon"
)

// DungeonSchema returns the JSON schema of one dungeon definition
func DungeonSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}

	schema := reflector.Reflect(&dungeon.Config{})
	if schema == nil {
		return nil, fmt.Errorf("failed to reflect dungeon schema")
	}
	schema.Title = "Dungeon"
	schema.Description = "Map generation, tile counts and encounter pools for one dungeon."

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
