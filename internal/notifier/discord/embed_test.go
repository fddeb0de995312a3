package discord

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalEmbed(t *testing.T, e *Embed) string {
	t.Helper()
	out, err := encodePayload(e)
	require.NoError(t, err)
	return string(out)
}

func TestEmbed_Empty(t *testing.T) {
	assert.Equal(t, `{}`, marshalEmbed(t, NewEmbed()))
}

func TestEmbed_AllAttributes(t *testing.T) {
	embed := NewEmbed().
		WithTitle("Title").
		WithDescription("Desc").
		WithURL("https://example.com").
		WithTimestamp("2024-01-02T03:04:05Z").
		WithColorValue(255).
		WithFooter("foot", FooterIconURL("https://example.com/f.png")).
		WithImage("https://example.com/i.png").
		WithThumbnail("https://example.com/t.png").
		WithAuthor("me", AuthorURL("https://example.com/me"), AuthorIconURL("https://example.com/a.png")).
		AddField("k", "v", true)

	want := `{"title":"Title","description":"Desc","url":"https://example.com",` +
		`"timestamp":"2024-01-02T03:04:05Z","color":255,` +
		`"footer":{"text":"foot","icon_url":"https://example.com/f.png"},` +
		`"image":{"url":"https://example.com/i.png"},` +
		`"thumbnail":{"url":"https://example.com/t.png"},` +
		`"author":{"name":"me","url":"https://example.com/me","icon_url":"https://example.com/a.png"},` +
		`"fields":[{"name":"k","value":"v","inline":true}]}`
	assert.Equal(t, want, marshalEmbed(t, embed))
}

func TestEmbed_OptionalSubObjectKeys(t *testing.T) {
	embed := NewEmbed().WithFooter("only text").WithAuthor("only name")
	assert.Equal(t, `{"footer":{"text":"only text"},"author":{"name":"only name"}}`, marshalEmbed(t, embed))
}

func TestEmbed_EmptyStringIsEmitted(t *testing.T) {
	assert.Equal(t, `{"title":""}`, marshalEmbed(t, NewEmbed().WithTitle("")))
}

func TestEmbed_ZeroColorIsEmitted(t *testing.T) {
	assert.Equal(t, `{"color":0}`, marshalEmbed(t, NewEmbed().WithColorValue(0)))
}

func TestEmbed_Fields(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		assert.Equal(t, `{"title":"x"}`, marshalEmbed(t, NewEmbed().WithTitle("x")))
	})

	t.Run("one", func(t *testing.T) {
		embed := NewEmbed().AddField("a", "1", false)
		assert.Equal(t, `{"fields":[{"name":"a","value":"1","inline":false}]}`, marshalEmbed(t, embed))
	})

	t.Run("three keep order", func(t *testing.T) {
		embed := NewEmbed().
			AddField("a", "1", false).
			AddField("b", "2", true).
			AddField("c", "3", false)
		want := `{"fields":[{"name":"a","value":"1","inline":false},` +
			`{"name":"b","value":"2","inline":true},` +
			`{"name":"c","value":"3","inline":false}]}`
		got := marshalEmbed(t, embed)
		assert.Equal(t, want, got)
		assert.True(t, json.Valid([]byte(got)))
	})
}

func TestEmbed_WithColor(t *testing.T) {
	embed, err := NewEmbed().WithColor("#5865F2")
	require.NoError(t, err)
	require.NotNil(t, embed.Color)
	assert.Equal(t, 5793266, *embed.Color)
}

func TestEmbed_WithColorInvalidLeavesEmbedUnchanged(t *testing.T) {
	embed := NewEmbed().WithColorValue(1)
	same, err := embed.WithColor("ZZZZZZ")
	require.Error(t, err)
	assert.Same(t, embed, same)
	assert.Equal(t, 1, *embed.Color)
}

func TestEmbed_WithTime(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	embed := NewEmbed().WithTime(ts)
	require.NotNil(t, embed.Timestamp)
	assert.Equal(t, "2024-05-06T07:08:09Z", *embed.Timestamp)
}

func TestEmbed_SettersReplace(t *testing.T) {
	embed := NewEmbed().WithTitle("first").WithTitle("second").WithFooter("a").WithFooter("b")
	assert.Equal(t, `{"title":"second","footer":{"text":"b"}}`, marshalEmbed(t, embed))
}
