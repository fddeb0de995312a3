package discord

import (
	"time"
)

// Embed is a rich-content block attached to a message. Every optional
// attribute is a pointer: nil means "not set" and is left out of the JSON
// entirely, while a pointer to "" is sent as an empty string.
type Embed struct {
	Title       *string         `json:"title,omitempty"`       // Title of embed
	Description *string         `json:"description,omitempty"` // Description of embed
	URL         *string         `json:"url,omitempty"`         // URL of embed
	Timestamp   *string         `json:"timestamp,omitempty"`   // ISO8601 timestamp
	Color       *int            `json:"color,omitempty"`       // Color code of the embed
	Footer      *EmbedFooter    `json:"footer,omitempty"`
	Image       *EmbedImage     `json:"image,omitempty"`
	Thumbnail   *EmbedThumbnail `json:"thumbnail,omitempty"`
	Author      *EmbedAuthor    `json:"author,omitempty"`
	Fields      []EmbedField    `json:"fields,omitempty"` // Array of embed field objects
}

// NewEmbed returns an empty embed ready for chained setters.
func NewEmbed() *Embed {
	return &Embed{}
}

// WithTitle sets the embed title
func (e *Embed) WithTitle(title string) *Embed {
	e.Title = &title
	return e
}

// WithDescription sets the embed description
func (e *Embed) WithDescription(description string) *Embed {
	e.Description = &description
	return e
}

// WithURL sets the link the embed title points to
func (e *Embed) WithURL(url string) *Embed {
	e.URL = &url
	return e
}

// WithTimestamp sets the raw ISO8601 timestamp string as given.
func (e *Embed) WithTimestamp(timestamp string) *Embed {
	e.Timestamp = &timestamp
	return e
}

// WithTime sets the timestamp from t, formatted as RFC 3339.
func (e *Embed) WithTime(t time.Time) *Embed {
	return e.WithTimestamp(t.Format(time.RFC3339))
}

// WithColor parses a hex color code ("5865F2" or "#5865F2") and sets it.
// On a parse error the embed is left unchanged and the error is returned.
func (e *Embed) WithColor(code string) (*Embed, error) {
	color, err := ParseColor(code)
	if err != nil {
		return e, err
	}
	e.Color = &color
	return e, nil
}

// WithColorValue sets an already decoded 0xRRGGBB color.
func (e *Embed) WithColorValue(color int) *Embed {
	e.Color = &color
	return e
}

// WithFooter sets the embed footer
func (e *Embed) WithFooter(text string, opts ...FooterOption) *Embed {
	e.Footer = NewEmbedFooter(text, opts...)
	return e
}

// WithImage sets the large image of the embed
func (e *Embed) WithImage(url string) *Embed {
	e.Image = NewEmbedImage(url)
	return e
}

// WithThumbnail sets the thumbnail of the embed
func (e *Embed) WithThumbnail(url string) *Embed {
	e.Thumbnail = NewEmbedThumbnail(url)
	return e
}

// WithAuthor sets the embed author
func (e *Embed) WithAuthor(name string, opts ...AuthorOption) *Embed {
	e.Author = NewEmbedAuthor(name, opts...)
	return e
}

// AddField appends a field. Fields keep insertion order.
func (e *Embed) AddField(name, value string, inline bool) *Embed {
	e.Fields = append(e.Fields, NewEmbedField(name, value, inline))
	return e
}

// Validate checks the embed against Discord's documented size limits.
func (e *Embed) Validate() error {
	return NewEmbedValidator().ValidateEmbed(e)
}
