package ggsurface

import "errors"

// ErrFontLoad is returned when a font file or embedded font cannot be parsed.
var ErrFontLoad = errors.New("ggsurface: load font")
