package manifest

import "errors"

var (
	// ErrInvalidLinkFormat is returned when a link lacks the signed v2 playlist shape.
	ErrInvalidLinkFormat = errors.New("this is not a v2 playlist.json link")

	// ErrUnexpectedStatus is returned when the manifest request does not succeed.
	ErrUnexpectedStatus = errors.New("unexpected manifest response status")

	// ErrInvalidDocument is returned when the manifest body is not a JSON object.
	ErrInvalidDocument = errors.New("manifest is not a JSON object")
)
