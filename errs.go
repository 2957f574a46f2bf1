// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package edgetopo

type constError string

func (e constError) Error() string {
	return string(e)
}

// ErrInvalidArgument is returned when generation parameters are out of range.
const ErrInvalidArgument = constError("invalid argument")

// ErrInvalidTopology is returned by [Validate] and [Depths] when a node list
// breaks the hierarchy rules.
const ErrInvalidTopology = constError("invalid topology")

// ErrMalformedRecord is returned when a table row cannot be parsed as a node.
const ErrMalformedRecord = constError("malformed record")
