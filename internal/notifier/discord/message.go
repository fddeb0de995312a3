package discord

import (
	"context"

	"github.com/aleister1102/discohook/internal/common/errorwrapper"
)

// Message accumulates everything sent in one webhook call. The destination
// URL is fixed at construction; the rest is set through chained setters.
type Message struct {
	url     string
	payload MessagePayload
}

// NewMessage creates a message addressed to the given webhook URL.
func NewMessage(url string) *Message {
	return &Message{url: url}
}

// URL returns the webhook URL the message is sent to.
func (m *Message) URL() string {
	return m.url
}

// WithContent sets the plain text content.
func (m *Message) WithContent(content string) *Message {
	m.payload.Content = &content
	return m
}

// WithUsername overrides the webhook's display name.
func (m *Message) WithUsername(username string) *Message {
	m.payload.Username = &username
	return m
}

// WithAvatarURL overrides the webhook's avatar.
func (m *Message) WithAvatarURL(avatarURL string) *Message {
	m.payload.AvatarURL = &avatarURL
	return m
}

// WithTTS sets the text-to-speech flag.
func (m *Message) WithTTS(tts bool) *Message {
	m.payload.TTS = tts
	return m
}

// AddEmbed appends an embed. The embed is held by reference, so later
// changes to it show up when the message is sent. Nil embeds are ignored.
func (m *Message) AddEmbed(embed *Embed) *Message {
	if embed != nil {
		m.payload.Embeds = append(m.payload.Embeds, embed)
	}
	return m
}

// Embeds returns the attached embeds in insertion order.
func (m *Message) Embeds() []*Embed {
	return m.payload.Embeds
}

// Payload returns the wire representation of the message.
func (m *Message) Payload() MessagePayload {
	return m.payload
}

// MarshalJSON renders the message body. An untouched message renders as {}.
func (m *Message) MarshalJSON() ([]byte, error) {
	return encodePayload(m.payload)
}

// JSON is MarshalJSON with a wrapped error.
func (m *Message) JSON() ([]byte, error) {
	body, err := m.MarshalJSON()
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to marshal discord payload")
	}
	return body, nil
}

// Validate checks the message against Discord's size limits.
func (m *Message) Validate() error {
	return NewEmbedValidator().ValidateMessage(m)
}

// Send delivers the message through n. See Notifier.Send.
func (m *Message) Send(ctx context.Context, n *Notifier) error {
	return n.Send(ctx, m)
}
