package views

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrFailedToReadContent  = errors.New("failed to read content file")
	ErrFailedToParseContent = errors.New("failed to parse content file")
)

//go:embed content.yaml
var defaultContent []byte

// Content is the landing page copy.
type Content struct {
	Title            string `yaml:"title"`
	Description      string `yaml:"description"`
	Headline         string `yaml:"headline"`
	HeadlineAccent   string `yaml:"headline_accent"`
	Lead             string `yaml:"lead"`
	EmailPlaceholder string `yaml:"email_placeholder"`
	Assets           Assets `yaml:"assets"`
	Mockup           Mockup `yaml:"mockup"`
}

type Assets struct {
	Datastar string `yaml:"datastar"`
	Tailwind string `yaml:"tailwind"`
}

// Mockup holds the copy of the decorative cards floating over the product image.
type Mockup struct {
	ImageURL        string `yaml:"image_url"`
	ImageAlt        string `yaml:"image_alt"`
	Satisfaction    string `yaml:"satisfaction"`
	TicketTitle     string `yaml:"ticket_title"`
	TicketTime      string `yaml:"ticket_time"`
	BotMessage      string `yaml:"bot_message"`
	CustomerInitial string `yaml:"customer_initial"`
	CustomerMessage string `yaml:"customer_message"`
}

// DefaultContent returns the embedded copy.
func DefaultContent() *Content {
	var c Content
	if err := yaml.Unmarshal(defaultContent, &c); err != nil {
		panic(fmt.Sprintf("views: embedded content.yaml: %v", err))
	}
	return &c
}

// LoadContent reads path over the embedded defaults. Keys missing from the
// file keep their default value. An empty path returns the defaults.
func LoadContent(path string) (*Content, error) {
	c := DefaultContent()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadContent, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Join(ErrFailedToParseContent, err)
	}
	return c, nil
}
