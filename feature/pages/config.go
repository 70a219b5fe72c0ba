package pages

// Config holds configuration for the HTML batch tools.
type Config struct {
	// Dir is the directory holding the HTML pages.
	Dir string `mapstructure:"dir" default:"pages"`
	// Extension selects the files processed by the updater.
	Extension string `mapstructure:"extension" default:".html"`
	// SVGTarget is the page cleaned by unwrap-svg when no file is given.
	SVGTarget string `mapstructure:"svg_target" default:"admin-dashboard.html"`
	// Prefix is prepended to object keys when publishing.
	Prefix string `mapstructure:"prefix" default:""`
}
