// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package sim draws random generation scenarios for property tests. A scenario
// is an edgetopo.Config plus a seed. Scenarios are drawn through rapid so that
// failing cases shrink toward small node counts, few blocks, and narrow boxes.
// Each parameter is drawn from a biased range with a minimum, a median, and a
// maximum, which keeps most scenarios small while still reaching the bounds.
package sim
