package notifier

// Embed color presets accepted by name in message documents.
const (
	DefaultEmbedColor = 0x2B2D31 // Discord dark theme color
	SuccessEmbedColor = 0x5CB85C
	ErrorEmbedColor   = 0xD9534F
	WarningEmbedColor = 0xF0AD4E
	InfoEmbedColor    = 0x5BC0DE
)

var colorPresets = map[string]int{
	"default": DefaultEmbedColor,
	"success": SuccessEmbedColor,
	"error":   ErrorEmbedColor,
	"warning": WarningEmbedColor,
	"info":    InfoEmbedColor,
}

// Document formats
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)
