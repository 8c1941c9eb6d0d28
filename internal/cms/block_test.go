package cms

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBlocksParsesBlockArray(t *testing.T) {
	raw := json.RawMessage(`[
		{"id":"1","type":"hero","title":"Sobre Nosotros","subtitle":"Desde 1998","theme":"dark"},
		{"id":"2","type":"rich-text","title":"Historia","body":"Texto largo","icon":"edit","imagePosition":"right"},
		{"id":"3","type":"grid","title":"Valores","items":[{"icon":"star","title":"Calidad","description":"Siempre"}]},
		{"id":"4","type":"cta","title":"Visitanos","buttonText":"Ir","buttonLink":"/sucursales"}
	]`)

	blocks := DecodeBlocks(raw, "Página")
	require.Len(t, blocks, 4)
	assert.Equal(t, BlockTypeHero, blocks[0].Type)
	assert.Equal(t, "dark", blocks[0].Theme)
	assert.Equal(t, "right", blocks[1].ImagePosition)
	require.Len(t, blocks[2].Items, 1)
	assert.Equal(t, "Calidad", blocks[2].Items[0].Title)
	assert.Equal(t, "/sucursales", blocks[3].ButtonLink)
}

func TestDecodeBlocksLegacyPlainText(t *testing.T) {
	raw := json.RawMessage(`"Contenido antiguo sin bloques."`)

	blocks := DecodeBlocks(raw, "Sobre Nosotros")
	require.Len(t, blocks, 1)
	assert.Equal(t, BlockTypeRichText, blocks[0].Type)
	assert.Equal(t, "Sobre Nosotros", blocks[0].Title)
	assert.Equal(t, "Contenido antiguo sin bloques.", blocks[0].Body)
}

func TestDecodeBlocksDoubleEncodedArray(t *testing.T) {
	inner := `[{"id":"1","type":"hero","title":"Hola"}]`
	raw, err := json.Marshal(inner)
	require.NoError(t, err)

	blocks := DecodeBlocks(raw, "Página")
	require.Len(t, blocks, 1)
	assert.Equal(t, BlockTypeHero, blocks[0].Type)
	assert.Equal(t, "Hola", blocks[0].Title)
}

func TestDecodeBlocksUnknownTypeDegradesToRichText(t *testing.T) {
	raw := json.RawMessage(`[{"id":"1","type":"video","title":"Clip","body":"desc"}]`)

	blocks := DecodeBlocks(raw, "Página")
	require.Len(t, blocks, 1)
	assert.Equal(t, BlockTypeRichText, blocks[0].Type)
	assert.Equal(t, "Clip", blocks[0].Title)
	assert.Equal(t, "desc", blocks[0].Body)
}

func TestDecodeBlocksEmptyAndGarbage(t *testing.T) {
	assert.Nil(t, DecodeBlocks(nil, "x"))
	assert.Nil(t, DecodeBlocks(json.RawMessage(`null`), "x"))
	assert.Nil(t, DecodeBlocks(json.RawMessage(`""`), "x"))
	assert.Nil(t, DecodeBlocks(json.RawMessage(`{"not":"an array"}`), "x"))
	assert.Nil(t, DecodeBlocks(json.RawMessage(`42`), "x"))
}

func TestEncodeBlocksRoundTrip(t *testing.T) {
	blocks := []Block{
		{ID: "1", Type: BlockTypeHero, Title: "Hola", Subtitle: "Sub"},
	}
	raw, err := EncodeBlocks(blocks)
	require.NoError(t, err)

	decoded := DecodeBlocks(raw, "fallback")
	require.Len(t, decoded, 1)
	assert.Equal(t, blocks[0], decoded[0])

	empty, err := EncodeBlocks(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(empty))
}

func TestPlainTextFlattening(t *testing.T) {
	blocks := []Block{
		{Type: BlockTypeHero, Title: "Educación", Subtitle: "Para todos"},
		{Type: BlockTypeRichText, Title: "ignorado", Body: "El cuerpo manda"},
		{Type: BlockTypeGrid, Items: []GridItem{
			{Title: "Calidad", Description: "Productos duraderos"},
		}},
	}

	text := PlainText(blocks)
	assert.Contains(t, text, "Educación")
	assert.Contains(t, text, "Para todos")
	assert.Contains(t, text, "El cuerpo manda")
	assert.NotContains(t, text, "ignorado", "body wins over title within a block")
	assert.Contains(t, text, "Calidad")
	assert.Contains(t, text, "Productos duraderos")
}
