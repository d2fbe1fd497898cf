package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/questhq/questagent/tool"
)

func TestDeclarations_FullRegistry(t *testing.T) {
	registry := tool.NewDefaultRegistry()

	defs := Declarations(registry)
	assert.Equal(t, len(registry.Names()), len(defs))

	for i, def := range defs {
		assert.Equal(t, "function", def.Type)
		assert.Equal(t, registry.Names()[i], def.Function.Name)
		assert.NotEmpty(t, def.Function.Description)
		assert.Equal(t, "object", def.Function.Parameters["type"])
	}
}

func TestDeclaration_CarriesSchema(t *testing.T) {
	def := Declaration(tool.NewSetStageTool())

	assert.Equal(t, "set_stage", def.Function.Name)

	properties, ok := def.Function.Parameters["properties"].(map[string]any)
	assert.True(t, ok)
	assert.Contains(t, properties, "stage")
}
