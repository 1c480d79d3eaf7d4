package models

import "path"

// AttachmentKind identifies the supported binary payload kinds.
type AttachmentKind string

const (
	// KindPNG is a PNG image payload.
	KindPNG AttachmentKind = "png"

	// KindJPEG is a JPEG image payload.
	KindJPEG AttachmentKind = "jpeg"
)

// KindFromMIME maps a detected MIME type to an attachment kind.
// Types outside the supported image set report ok=false and are skipped
// by ingestion rather than treated as errors.
func KindFromMIME(mime string) (AttachmentKind, bool) {
	switch mime {
	case "image/png":
		return KindPNG, true
	case "image/jpeg":
		return KindJPEG, true
	default:
		return "", false
	}
}

// Image reports whether the kind is one of the supported image kinds.
func (k AttachmentKind) Image() bool {
	return k == KindPNG || k == KindJPEG
}

// Extension returns the file extension for the kind, without a dot.
func (k AttachmentKind) Extension() string {
	return string(k)
}

// DocumentRef identifies a document by its vault-relative path.
type DocumentRef struct {
	Path string
}

// Folder returns the document's folder path, or "" for the vault root.
func (d DocumentRef) Folder() string {
	dir := path.Dir(d.Path)
	if dir == "." || dir == "/" {
		return ""
	}
	return dir
}

// BaseName returns the document's name without its extension.
func (d DocumentRef) BaseName() string {
	base := path.Base(d.Path)
	return base[:len(base)-len(path.Ext(base))]
}

// Extension returns the document's extension without the dot, e.g. "md".
func (d DocumentRef) Extension() string {
	ext := path.Ext(d.Path)
	if ext == "" {
		return ""
	}
	return ext[1:]
}
