package discord

import (
	"fmt"
	"unicode/utf8"

	"github.com/aleister1102/discohook/internal/common/errorwrapper"
)

// Discord API limits, counted in characters.
const (
	MaxContentLength     = 2000
	MaxUsernameLength    = 80
	MaxEmbedsPerMessage  = 10
	MaxTitleLength       = 256
	MaxDescriptionLength = 4096
	MaxFieldsPerEmbed    = 25
	MaxFieldNameLength   = 256
	MaxFieldValueLength  = 1024
	MaxFooterTextLength  = 2048
	MaxAuthorNameLength  = 256
)

// EmbedValidator checks messages and embeds against Discord's limits.
// Sending never runs it; callers opt in.
type EmbedValidator struct{}

// NewEmbedValidator creates a new embed validator
func NewEmbedValidator() *EmbedValidator {
	return &EmbedValidator{}
}

// ValidateMessage validates the top-level fields and every embed, collecting
// all violations into one error.
func (v *EmbedValidator) ValidateMessage(m *Message) error {
	var collector errorwrapper.ErrorCollector

	if m.payload.Content != nil && length(*m.payload.Content) > MaxContentLength {
		collector.Add(errorwrapper.NewValidationError("content", *m.payload.Content, fmt.Sprintf("content cannot exceed %d characters", MaxContentLength)))
	}
	if m.payload.Username != nil && length(*m.payload.Username) > MaxUsernameLength {
		collector.Add(errorwrapper.NewValidationError("username", *m.payload.Username, fmt.Sprintf("username cannot exceed %d characters", MaxUsernameLength)))
	}
	if len(m.payload.Embeds) > MaxEmbedsPerMessage {
		collector.Add(errorwrapper.NewValidationError("embeds", len(m.payload.Embeds), fmt.Sprintf("cannot have more than %d embeds", MaxEmbedsPerMessage)))
	}
	for _, embed := range m.payload.Embeds {
		collector.Add(v.ValidateEmbed(embed))
	}

	return collector.Error()
}

// ValidateEmbed validates a Discord embed
func (v *EmbedValidator) ValidateEmbed(embed *Embed) error {
	if embed == nil {
		return nil
	}

	if embed.Title != nil && length(*embed.Title) > MaxTitleLength {
		return errorwrapper.NewValidationError("title", *embed.Title, fmt.Sprintf("title cannot exceed %d characters", MaxTitleLength))
	}

	if embed.Description != nil && length(*embed.Description) > MaxDescriptionLength {
		return errorwrapper.NewValidationError("description", *embed.Description, fmt.Sprintf("description cannot exceed %d characters", MaxDescriptionLength))
	}

	if len(embed.Fields) > MaxFieldsPerEmbed {
		return errorwrapper.NewValidationError("fields", len(embed.Fields), fmt.Sprintf("cannot have more than %d fields", MaxFieldsPerEmbed))
	}

	for i, field := range embed.Fields {
		if field.Name == "" {
			return errorwrapper.NewValidationError("field_name", field.Name, fmt.Sprintf("field %d name cannot be empty", i))
		}
		if field.Value == "" {
			return errorwrapper.NewValidationError("field_value", field.Value, fmt.Sprintf("field %d value cannot be empty", i))
		}
		if length(field.Name) > MaxFieldNameLength {
			return errorwrapper.NewValidationError("field_name", field.Name, fmt.Sprintf("field %d name cannot exceed %d characters", i, MaxFieldNameLength))
		}
		if length(field.Value) > MaxFieldValueLength {
			return errorwrapper.NewValidationError("field_value", field.Value, fmt.Sprintf("field %d value cannot exceed %d characters", i, MaxFieldValueLength))
		}
	}

	if embed.Footer != nil && length(embed.Footer.Text) > MaxFooterTextLength {
		return errorwrapper.NewValidationError("footer_text", embed.Footer.Text, fmt.Sprintf("footer text cannot exceed %d characters", MaxFooterTextLength))
	}

	if embed.Author != nil && length(embed.Author.Name) > MaxAuthorNameLength {
		return errorwrapper.NewValidationError("author_name", embed.Author.Name, fmt.Sprintf("author name cannot exceed %d characters", MaxAuthorNameLength))
	}

	return nil
}

func length(s string) int {
	return utf8.RuneCountInString(s)
}
