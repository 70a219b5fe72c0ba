package server

import (
	"fmt"
	"strings"
)

// Config holds configuration for the local preview server.
type Config struct {
	// Port is the TCP port the server listens on, on all interfaces.
	Port int `mapstructure:"port" default:"8888"`
	// Root is the document root served by the preview server.
	Root string `mapstructure:"root" default:"pages"`
	// EntryPage is the page opened in the browser once the server is bound.
	EntryPage string `mapstructure:"entry_page" default:"login.html"`
	// OpenBrowser toggles the best-effort browser launch.
	OpenBrowser bool `mapstructure:"open_browser" default:"true"`
}

// Host is the host name advertised in URLs printed to the operator.
const Host = "localhost"

// Address returns the listen address covering all local interfaces.
func (c Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// URL returns the local URL of the given page.
func (c Config) URL(page string) string {
	return fmt.Sprintf("http://%s:%d/%s", Host, c.Port, strings.TrimPrefix(page, "/"))
}

// EntryURL returns the URL of the entry page.
func (c Config) EntryURL() string {
	return c.URL(c.EntryPage)
}
