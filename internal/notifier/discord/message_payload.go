package discord

import (
	"bytes"
	"encoding/json"
)

// MessagePayload is the JSON body sent to a Discord webhook. Keys are
// emitted in field order; nil pointers, a false TTS flag and an empty
// embed list are left out.
type MessagePayload struct {
	Content   *string  `json:"content,omitempty"`    // Message content (text)
	Username  *string  `json:"username,omitempty"`   // Override the default webhook username
	AvatarURL *string  `json:"avatar_url,omitempty"` // Override the default webhook avatar
	TTS       bool     `json:"tts,omitempty"`        // Read the message aloud
	Embeds    []*Embed `json:"embeds,omitempty"`     // Array of embed objects
}

// encodePayload renders v as compact JSON. HTML characters are written as
// is and the encoder's trailing newline is dropped.
func encodePayload(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
