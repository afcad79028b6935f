package dto

import "io"

// AttachmentUpload carries an uploaded file on its way to object storage.
type AttachmentUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}
