package domain

import "errors"

var (
	ErrEmptyFile        = errors.New("file contains no readable lines")
	ErrNotBlockFile     = errors.New("file does not look like a block-table text file")
	ErrUndecodableFile  = errors.New("file could not be decoded with any supported encoding")
	ErrNoBlocks         = errors.New("no data blocks found in file")
	ErrUnknownPart      = errors.New("part not defined in project")
	ErrInvalidReference = errors.New("part has a non-positive reference quantity")
)
