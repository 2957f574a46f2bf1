// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Command edgetopo generates, checks, and compares synthetic edge resource
// topologies, and translates user location traces between cities.
package main

import (
	"os"
)

func main() {
	a := &app{}
	err := newRootCmd(a).Execute()
	if a.log != nil {
		_ = a.log.Sync()
	}
	if err != nil {
		os.Exit(1)
	}
}
