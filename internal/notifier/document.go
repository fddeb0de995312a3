package notifier

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aleister1102/discohook/internal/common/errorwrapper"
	"github.com/aleister1102/discohook/internal/notifier/discord"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Document is the file form of a webhook message. Pointer fields keep the
// difference between a key that is missing and one set to "".
type Document struct {
	Content   *string         `json:"content" yaml:"content"`
	Username  *string         `json:"username" yaml:"username"`
	AvatarURL *string         `json:"avatar_url" yaml:"avatar_url"`
	TTS       bool            `json:"tts" yaml:"tts"`
	Embeds    []EmbedDocument `json:"embeds" yaml:"embeds"`
}

// EmbedDocument describes one embed.
type EmbedDocument struct {
	Title       *string         `json:"title" yaml:"title"`
	Description *string         `json:"description" yaml:"description"`
	URL         *string         `json:"url" yaml:"url"`
	Timestamp   *string         `json:"timestamp" yaml:"timestamp"`
	Color       *string         `json:"color" yaml:"color"`
	Footer      *FooterDocument `json:"footer" yaml:"footer"`
	Image       *string         `json:"image" yaml:"image"`
	Thumbnail   *string         `json:"thumbnail" yaml:"thumbnail"`
	Author      *AuthorDocument `json:"author" yaml:"author"`
	Fields      []FieldDocument `json:"fields" yaml:"fields"`
}

// FooterDocument is an embed footer; Text is required by Discord.
type FooterDocument struct {
	Text    string  `json:"text" yaml:"text"`
	IconURL *string `json:"icon_url" yaml:"icon_url"`
}

// AuthorDocument is an embed author block.
type AuthorDocument struct {
	Name    string  `json:"name" yaml:"name"`
	URL     *string `json:"url" yaml:"url"`
	IconURL *string `json:"icon_url" yaml:"icon_url"`
}

// FieldDocument is one name/value field. Inline defaults to false.
type FieldDocument struct {
	Name   string `json:"name" yaml:"name"`
	Value  string `json:"value" yaml:"value"`
	Inline bool   `json:"inline" yaml:"inline"`
}

// LoadDocument reads a message document, picking the decoder from the file
// extension. Anything that is not .json is read as YAML.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read message document")
	}

	format := FormatYAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = FormatJSON
	}
	return ParseDocument(data, format)
}

// ParseDocument decodes a message document in the given format.
func ParseDocument(data []byte, format string) (*Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errorwrapper.WrapError(err, "failed to parse JSON message document")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errorwrapper.WrapError(err, "failed to parse YAML message document")
		}
	default:
		return nil, errorwrapper.NewValidationError("format", format, "unsupported message document format")
	}
	return &doc, nil
}

// Build turns the document into a Message addressed to url.
func (d *Document) Build(url string) (*discord.Message, error) {
	msg := discord.NewMessage(url)
	if d.Content != nil {
		msg.WithContent(*d.Content)
	}
	if d.Username != nil {
		msg.WithUsername(*d.Username)
	}
	if d.AvatarURL != nil {
		msg.WithAvatarURL(*d.AvatarURL)
	}
	msg.WithTTS(d.TTS)

	for i := range d.Embeds {
		embed, err := d.Embeds[i].Build()
		if err != nil {
			return nil, fmt.Errorf("embed %d: %w", i, err)
		}
		msg.AddEmbed(embed)
	}
	return msg, nil
}

// Build turns the embed document into an Embed.
func (e *EmbedDocument) Build() (*discord.Embed, error) {
	embed := discord.NewEmbed()
	if e.Title != nil {
		embed.WithTitle(*e.Title)
	}
	if e.Description != nil {
		embed.WithDescription(*e.Description)
	}
	if e.URL != nil {
		embed.WithURL(*e.URL)
	}
	if e.Timestamp != nil {
		embed.WithTimestamp(*e.Timestamp)
	}
	if e.Color != nil {
		color, err := ResolveColor(*e.Color)
		if err != nil {
			return nil, err
		}
		embed.WithColorValue(color)
	}
	if e.Footer != nil {
		var opts []discord.FooterOption
		if e.Footer.IconURL != nil {
			opts = append(opts, discord.FooterIconURL(*e.Footer.IconURL))
		}
		embed.WithFooter(e.Footer.Text, opts...)
	}
	if e.Image != nil {
		embed.WithImage(*e.Image)
	}
	if e.Thumbnail != nil {
		embed.WithThumbnail(*e.Thumbnail)
	}
	if e.Author != nil {
		var opts []discord.AuthorOption
		if e.Author.URL != nil {
			opts = append(opts, discord.AuthorURL(*e.Author.URL))
		}
		if e.Author.IconURL != nil {
			opts = append(opts, discord.AuthorIconURL(*e.Author.IconURL))
		}
		embed.WithAuthor(e.Author.Name, opts...)
	}
	for _, field := range e.Fields {
		embed.AddField(field.Name, field.Value, field.Inline)
	}
	return embed, nil
}

// ResolveColor accepts a preset name (case-insensitive) or a hex code.
func ResolveColor(code string) (int, error) {
	if color, ok := colorPresets[strings.ToLower(strings.TrimSpace(code))]; ok {
		return color, nil
	}
	return discord.ParseColor(code)
}
