package static

import "embed"

// FS embeds all static files (CSS, JS) into the binary
// This allows the server to run standalone without external static files
//
//go:embed app.css app.js person_form.js
var FS embed.FS
