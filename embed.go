package thaicustomsmcp

import (
	"embed"
	"io/fs"
)

//go:embed resources/docs/**
var resources embed.FS

// ReferenceDocs returns the embedded customs reference documents as a
// filesystem rooted at the documents directory.
func ReferenceDocs() (fs.FS, error) {
	return fs.Sub(resources, "resources/docs")
}
