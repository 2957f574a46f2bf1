// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package edgetopo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultConfig reproduces the Melbourne CBD dataset: 1300 resources spread
// over 12 blocks around a data center at the city center.
var DefaultConfig = Config{
	Count:      1300,
	Box:        MelbourneCBD,
	BlockCount: 12,
	State:      "VIC",
	Root: Location{
		Latitude:  -37.8136,
		Longitude: 144.9631,
	},
}

// Config holds the parameters of a generation run.
type Config struct {
	// Count is the total number of nodes, data center included.
	Count int `validate:"gte=1"`

	// Box bounds the sampled positions of every node except the data center.
	Box Box

	// BlockCount is the number of block labels, numbered from 1.
	BlockCount int `validate:"gte=1"`

	// State is copied into every node.
	State string

	// Root is the fixed position of the data center. It need not lie within
	// Box.
	Root Location
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate returns an error wrapping [ErrInvalidArgument] if c cannot be used
// for generation.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidArgument)
	}
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		msgs := make([]string, len(fieldErrs))
		for i, fe := range fieldErrs {
			if fe.Param() != "" {
				msgs[i] = fmt.Sprintf("%s must satisfy %s=%s, got %v", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value())
			} else {
				msgs[i] = fmt.Sprintf("%s must satisfy %s, got %v", fe.Namespace(), fe.Tag(), fe.Value())
			}
		}
		return fmt.Errorf("%w: %s", ErrInvalidArgument, strings.Join(msgs, "; "))
	}
	if !c.Box.finite() {
		return fmt.Errorf("%w: box bounds must be finite, got %+v", ErrInvalidArgument, c.Box)
	}
	return nil
}
