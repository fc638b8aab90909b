package contextcheck

import "embed"

//go:embed data/corpus.txt
var embeddedFS embed.FS
