package discord

// EmbedFooter represents the footer of an embed.
type EmbedFooter struct {
	Text    string  `json:"text"`               // Footer text
	IconURL *string `json:"icon_url,omitempty"` // URL of footer icon (only supports http(s) and attachments)
}

// FooterOption customizes an EmbedFooter.
type FooterOption func(*EmbedFooter)

// FooterIconURL sets the footer icon.
func FooterIconURL(url string) FooterOption {
	return func(f *EmbedFooter) {
		f.IconURL = &url
	}
}

// NewEmbedFooter creates a new Discord embed footer
func NewEmbedFooter(text string, opts ...FooterOption) *EmbedFooter {
	footer := &EmbedFooter{Text: text}
	for _, opt := range opts {
		opt(footer)
	}
	return footer
}

// EmbedImage represents the image of an embed.
type EmbedImage struct {
	URL string `json:"url"` // Source URL of image (only supports http(s) and attachments)
}

// NewEmbedImage creates a new Discord embed image
func NewEmbedImage(url string) *EmbedImage {
	return &EmbedImage{URL: url}
}

// EmbedThumbnail represents the thumbnail of an embed.
type EmbedThumbnail struct {
	URL string `json:"url"` // Source URL of thumbnail (only supports http(s) and attachments)
}

// NewEmbedThumbnail creates a new Discord embed thumbnail
func NewEmbedThumbnail(url string) *EmbedThumbnail {
	return &EmbedThumbnail{URL: url}
}

// EmbedAuthor represents the author of an embed.
type EmbedAuthor struct {
	Name    string  `json:"name"`               // Name of author
	URL     *string `json:"url,omitempty"`      // URL of author (only supports http(s))
	IconURL *string `json:"icon_url,omitempty"` // URL of author icon (only supports http(s) and attachments)
}

// AuthorOption customizes an EmbedAuthor.
type AuthorOption func(*EmbedAuthor)

// AuthorURL sets the link behind the author name.
func AuthorURL(url string) AuthorOption {
	return func(a *EmbedAuthor) {
		a.URL = &url
	}
}

// AuthorIconURL sets the small icon next to the author name.
func AuthorIconURL(url string) AuthorOption {
	return func(a *EmbedAuthor) {
		a.IconURL = &url
	}
}

// NewEmbedAuthor creates a new Discord embed author
func NewEmbedAuthor(name string, opts ...AuthorOption) *EmbedAuthor {
	author := &EmbedAuthor{Name: name}
	for _, opt := range opts {
		opt(author)
	}
	return author
}

// EmbedField represents a field in an embed. All three keys are always sent.
type EmbedField struct {
	Name   string `json:"name"`   // Name of the field
	Value  string `json:"value"`  // Value of the field
	Inline bool   `json:"inline"` // Whether or not this field should display inline
}

// NewEmbedField creates a new Discord embed field
func NewEmbedField(name, value string, inline bool) EmbedField {
	return EmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	}
}
