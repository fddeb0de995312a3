package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// fieldFlag collects repeated -field name|value[|inline] arguments.
type fieldFlag []fieldArg

type fieldArg struct {
	Name   string
	Value  string
	Inline bool
}

func (f *fieldFlag) String() string {
	parts := make([]string, 0, len(*f))
	for _, field := range *f {
		parts = append(parts, fmt.Sprintf("%s|%s|%t", field.Name, field.Value, field.Inline))
	}
	return strings.Join(parts, ", ")
}

func (f *fieldFlag) Set(value string) error {
	parts := strings.SplitN(value, "|", 3)
	if len(parts) < 2 {
		return fmt.Errorf("field %q must look like name|value or name|value|inline", value)
	}

	field := fieldArg{Name: parts[0], Value: parts[1]}
	if len(parts) == 3 {
		inline, err := strconv.ParseBool(parts[2])
		if err != nil {
			return fmt.Errorf("field %q has an invalid inline flag: %w", value, err)
		}
		field.Inline = inline
	}
	*f = append(*f, field)
	return nil
}

// AppFlags holds the parsed command line. String options are pointers so an
// option given as "" is told apart from one not given at all.
type AppFlags struct {
	WebhookURL       string
	GlobalConfigFile string
	MessageFile      string
	Validate         bool
	DryRun           bool

	Content   *string
	Username  *string
	AvatarURL *string
	TTS       *bool

	Title       *string
	Description *string
	Color       *string
	EmbedURL    *string
	Timestamp   *string
	Footer      *string
	FooterIcon  *string
	Image       *string
	Thumbnail   *string
	Author      *string
	AuthorURL   *string
	AuthorIcon  *string
	Fields      fieldFlag
}

// HasEmbed reports whether any embed option was given.
func (f AppFlags) HasEmbed() bool {
	for _, v := range []*string{f.Title, f.Description, f.Color, f.EmbedURL, f.Timestamp, f.Footer, f.Image, f.Thumbnail, f.Author} {
		if v != nil {
			return true
		}
	}
	return len(f.Fields) > 0
}

// ParseFlags parses args (without the program name).
func ParseFlags(args []string, output io.Writer) (AppFlags, error) {
	fs := flag.NewFlagSet("discohook", flag.ContinueOnError)
	fs.SetOutput(output)

	flags := AppFlags{}

	webhookURL := fs.String("url", "", "Webhook URL. Falls back to webhook_url from the config file.")
	webhookURLAlias := fs.String("u", "", "Alias for -url")
	globalConfigFile := fs.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := fs.String("c", "", "Alias for -config")
	messageFile := fs.String("message", "", "Path to a YAML/JSON message document. Other options override or extend it.")
	messageFileAlias := fs.String("m", "", "Alias for -message")
	fs.BoolVar(&flags.Validate, "validate", false, "Check the message against Discord's size limits before sending and refuse to send if it fails.")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "Print the JSON payload instead of sending it.")

	strs := map[string]**string{
		"content":     &flags.Content,
		"username":    &flags.Username,
		"avatar":      &flags.AvatarURL,
		"title":       &flags.Title,
		"description": &flags.Description,
		"color":       &flags.Color,
		"embed-url":   &flags.EmbedURL,
		"timestamp":   &flags.Timestamp,
		"footer":      &flags.Footer,
		"footer-icon": &flags.FooterIcon,
		"image":       &flags.Image,
		"thumbnail":   &flags.Thumbnail,
		"author":      &flags.Author,
		"author-url":  &flags.AuthorURL,
		"author-icon": &flags.AuthorIcon,
	}
	usage := map[string]string{
		"content":     "Message text.",
		"username":    "Override the webhook's display name.",
		"avatar":      "Override the webhook's avatar URL.",
		"title":       "Embed title.",
		"description": "Embed description.",
		"color":       "Embed color: RRGGBB, #RRGGBB or one of default, success, error, warning, info.",
		"embed-url":   "Link behind the embed title.",
		"timestamp":   "Embed timestamp (ISO 8601), or \"now\".",
		"footer":      "Embed footer text.",
		"footer-icon": "Embed footer icon URL.",
		"image":       "Embed image URL.",
		"thumbnail":   "Embed thumbnail URL.",
		"author":      "Embed author name.",
		"author-url":  "Embed author link.",
		"author-icon": "Embed author icon URL.",
	}
	values := make(map[string]*string, len(strs))
	for name := range strs {
		values[name] = fs.String(name, "", usage[name])
	}
	tts := fs.Bool("tts", false, "Send as text-to-speech.")
	fs.Var(&flags.Fields, "field", "Embed field as name|value or name|value|inline. Repeatable.")

	if err := fs.Parse(args); err != nil {
		return AppFlags{}, err
	}
	if fs.NArg() > 0 {
		return AppFlags{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	fs.Visit(func(f *flag.Flag) {
		if target, ok := strs[f.Name]; ok {
			v := *values[f.Name]
			*target = &v
		}
		if f.Name == "tts" {
			flags.TTS = tts
		}
	})

	flags.WebhookURL = firstNonEmpty(*webhookURL, *webhookURLAlias)
	flags.GlobalConfigFile = firstNonEmpty(*globalConfigFile, *globalConfigFileAlias)
	flags.MessageFile = firstNonEmpty(*messageFile, *messageFileAlias)

	return flags, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
