// Package server holds the preview server configuration.
//
// The feature/preview package owns the server lifecycle; this package only
// defines the settings it is started with and the URLs derived from them.
//
// # Configuration
//
// The Config struct defines the listen port, the document root, the entry
// page opened in the browser and whether the browser is opened at all.
// Defaults match the historical development setup: port 8888 serving the
// sibling "pages" directory, landing on login.html.
package server
