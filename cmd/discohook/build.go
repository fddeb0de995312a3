package main

import (
	"strings"
	"time"

	"github.com/aleister1102/discohook/internal/notifier"
	"github.com/aleister1102/discohook/internal/notifier/discord"
)

// buildMessage assembles the message from an optional document and the
// command line. Top-level options replace the document's values; embed
// options add one more embed after the document's.
func buildMessage(flags AppFlags, webhookURL string, now time.Time) (*discord.Message, error) {
	msg := discord.NewMessage(webhookURL)
	if flags.MessageFile != "" {
		doc, err := notifier.LoadDocument(flags.MessageFile)
		if err != nil {
			return nil, err
		}
		if msg, err = doc.Build(webhookURL); err != nil {
			return nil, err
		}
	}

	if flags.Content != nil {
		msg.WithContent(*flags.Content)
	}
	if flags.Username != nil {
		msg.WithUsername(*flags.Username)
	}
	if flags.AvatarURL != nil {
		msg.WithAvatarURL(*flags.AvatarURL)
	}
	if flags.TTS != nil {
		msg.WithTTS(*flags.TTS)
	}

	if flags.HasEmbed() {
		embed, err := buildEmbed(flags, now)
		if err != nil {
			return nil, err
		}
		msg.AddEmbed(embed)
	}
	return msg, nil
}

func buildEmbed(flags AppFlags, now time.Time) (*discord.Embed, error) {
	embed := discord.NewEmbed()
	if flags.Title != nil {
		embed.WithTitle(*flags.Title)
	}
	if flags.Description != nil {
		embed.WithDescription(*flags.Description)
	}
	if flags.EmbedURL != nil {
		embed.WithURL(*flags.EmbedURL)
	}
	if flags.Timestamp != nil {
		if strings.EqualFold(*flags.Timestamp, "now") {
			embed.WithTime(now.UTC())
		} else {
			embed.WithTimestamp(*flags.Timestamp)
		}
	}
	if flags.Color != nil {
		color, err := notifier.ResolveColor(*flags.Color)
		if err != nil {
			return nil, err
		}
		embed.WithColorValue(color)
	}
	if flags.Footer != nil {
		var opts []discord.FooterOption
		if flags.FooterIcon != nil {
			opts = append(opts, discord.FooterIconURL(*flags.FooterIcon))
		}
		embed.WithFooter(*flags.Footer, opts...)
	}
	if flags.Image != nil {
		embed.WithImage(*flags.Image)
	}
	if flags.Thumbnail != nil {
		embed.WithThumbnail(*flags.Thumbnail)
	}
	if flags.Author != nil {
		var opts []discord.AuthorOption
		if flags.AuthorURL != nil {
			opts = append(opts, discord.AuthorURL(*flags.AuthorURL))
		}
		if flags.AuthorIcon != nil {
			opts = append(opts, discord.AuthorIconURL(*flags.AuthorIcon))
		}
		embed.WithAuthor(*flags.Author, opts...)
	}
	for _, field := range flags.Fields {
		embed.AddField(field.Name, field.Value, field.Inline)
	}
	return embed, nil
}
