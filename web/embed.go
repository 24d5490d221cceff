package web

import "embed"

// FS holds the stylesheet and other assets served under /static.
//
//go:embed static/*
var FS embed.FS
