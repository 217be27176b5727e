package skeleton

import "github.com/pkg/errors"

// Lookup and validation errors.
var (
	// ErrBoneNotFound is returned when a bone name does not exist.
	ErrBoneNotFound = errors.New("skeleton: bone not found")

	// ErrSlotNotFound is returned when a slot name does not exist.
	ErrSlotNotFound = errors.New("skeleton: slot not found")

	// ErrAttachmentNotFound is returned when a skin has no attachment
	// with the requested name for a slot.
	ErrAttachmentNotFound = errors.New("skeleton: attachment not found")

	// ErrInvalidDrawOrder is returned when a draw order is not a
	// permutation of the slot indices.
	ErrInvalidDrawOrder = errors.New("skeleton: draw order is not a permutation")
)
