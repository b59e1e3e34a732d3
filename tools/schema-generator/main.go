package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/promptstack/promptsite/pkg/config"
	"github.com/promptstack/promptsite/pkg/prompt"
)

func main() {
	if err := os.MkdirAll("schema", 0755); err != nil {
		log.Fatalf("Error creating schema directory: %v", err)
	}

	configReflector := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}
	configSchema := configReflector.Reflect(&config.SiteConfig{})
	configSchema.Title = "Prompt Site Configuration"
	configSchema.Description = "Configuration schema for promptsite static site generation."
	writeSchema("schema/site.config.schema.json", configSchema)

	recordReflector := &jsonschema.Reflector{
		ExpandedStruct: true,
	}
	recordSchema := recordReflector.Reflect(&prompt.Record{})
	recordSchema.Title = "Prompt Record"
	recordSchema.Description = "Shape of one prompt as served by the JSON query endpoints."
	writeSchema("schema/prompt.record.schema.json", recordSchema)
}

func writeSchema(path string, schema *jsonschema.Schema) {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("Error marshaling schema: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}
	log.Printf("Successfully generated schema at %s", path)
}
