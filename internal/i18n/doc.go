package i18n

// Package i18n is the screen's resource table. Message files live in
// locales/ as go-i18n TOML and are embedded into the binary.
