// Package pages provides the batch tools that operate on the static HTML pages.
//
// Pages are treated as opaque text: every edit is a marker-guarded string or
// regular expression substitution, never a parsed document.
//
// # Updater
//
// The Updater walks a pages directory and, for every page, applies in order:
//
//   - InjectStylesheet: adds the shared stylesheet link before the first </head>.
//   - InjectScript: adds the main script tag before the first </body>.
//   - InjectFooter: replaces the first <footer> block with the standard footer,
//     or appends the standard footer before </body> when the page has none.
//
// Each step is skipped when its marker text already appears anywhere in the
// page, so rerunning the updater leaves updated pages unchanged.
//
// # SVG Cleanup
//
// UnwrapSVG strips <span class="material-symbols-outlined"> wrappers that were
// left around inline SVG icons after the icon font was replaced.
//
// # Publishing
//
// Publisher mirrors the pages tree into an S3/MinIO bucket through the
// core/storage client.
package pages
