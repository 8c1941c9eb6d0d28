package cms

import (
	"encoding/json"
	"strings"
)

// BlockType discriminates the section kinds the block editor produces.
type BlockType string

const (
	BlockTypeHero     BlockType = "hero"
	BlockTypeRichText BlockType = "rich-text"
	BlockTypeGrid     BlockType = "grid"
	BlockTypeCTA      BlockType = "cta"
)

var validBlockTypes = []BlockType{
	BlockTypeHero,
	BlockTypeRichText,
	BlockTypeGrid,
	BlockTypeCTA,
}

// IsValid reports whether the value is a known BlockType.
func (t BlockType) IsValid() bool {
	for _, candidate := range validBlockTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// GridItem is one card of a grid block.
type GridItem struct {
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// Block is one section of a page or article. The shape is a union: hero uses
// title/subtitle/theme, rich-text uses title/body/icon/imagePosition, grid
// uses title/items, cta uses title/subtitle/buttonText/buttonLink/theme.
type Block struct {
	ID            string     `json:"id,omitempty"`
	Type          BlockType  `json:"type"`
	Title         string     `json:"title,omitempty"`
	Subtitle      string     `json:"subtitle,omitempty"`
	Body          string     `json:"body,omitempty"`
	Icon          string     `json:"icon,omitempty"`
	ImagePosition string     `json:"imagePosition,omitempty"`
	Theme         string     `json:"theme,omitempty"`
	ButtonText    string     `json:"buttonText,omitempty"`
	ButtonLink    string     `json:"buttonLink,omitempty"`
	Items         []GridItem `json:"items,omitempty"`
}

// DecodeBlocks parses stored content into blocks. Rows written before the
// block editor hold a bare string; those come back as a single rich-text
// block titled with fallbackTitle. Blocks with an unrecognized type degrade
// to rich-text so old rows keep rendering.
func DecodeBlocks(raw json.RawMessage, fallbackTitle string) []Block {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	var blocks []Block
	if err := json.Unmarshal(raw, &blocks); err == nil {
		return normalizeBlocks(blocks)
	}

	// Legacy rows: either a JSON string wrapping the real array, or plain text.
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		if err := json.Unmarshal([]byte(text), &blocks); err == nil {
			return normalizeBlocks(blocks)
		}
		if strings.TrimSpace(text) == "" {
			return nil
		}
		return []Block{{
			ID:    "fallback-1",
			Type:  BlockTypeRichText,
			Title: fallbackTitle,
			Body:  text,
		}}
	}

	// Anything else (object, number) is not renderable content.
	return nil
}

func normalizeBlocks(blocks []Block) []Block {
	for i := range blocks {
		if !blocks[i].Type.IsValid() {
			blocks[i].Type = BlockTypeRichText
		}
	}
	return blocks
}

// EncodeBlocks serializes blocks for storage.
func EncodeBlocks(blocks []Block) (json.RawMessage, error) {
	if blocks == nil {
		blocks = []Block{}
	}
	return json.Marshal(blocks)
}

// PlainText flattens blocks into the text the SEO scorer reads: body where
// present, otherwise title and subtitle, plus every grid card's text.
func PlainText(blocks []Block) string {
	var parts []string
	appendPart := func(s string) {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, s)
		}
	}
	for _, block := range blocks {
		if block.Body != "" {
			appendPart(block.Body)
		} else {
			appendPart(block.Title)
			appendPart(block.Subtitle)
		}
		for _, item := range block.Items {
			appendPart(item.Title)
			appendPart(item.Description)
		}
	}
	return strings.Join(parts, "\n")
}
