// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package edgetopo_test

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/petenewcomb/edgetopo-go"
)

// Generates a topology holding only the data center and writes it as CSV.
func Example_dataCenterOnly() {
	config := edgetopo.DefaultConfig
	config.Count = 1

	nodes, err := edgetopo.Generate(&config, edgetopo.NewSource(1))
	if err != nil {
		fmt.Println(err)
		return
	}

	w := csv.NewWriter(os.Stdout)
	if err := edgetopo.WriteTable(w, nodes); err != nil {
		fmt.Println(err)
		return
	}
	w.Flush()
	// Output:
	// ID,Latitude,Longitude,Block,Level,Parent,State,Details
	// 0,-37.8136,144.9631,0,0,-1,VIC,DataCenter
}

// Generates the Melbourne CBD dataset and checks its shape.
func Example_melbourne() {
	nodes, err := edgetopo.Generate(&edgetopo.DefaultConfig, edgetopo.NewSource(42))
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := edgetopo.Validate(nodes); err != nil {
		fmt.Println(err)
		return
	}
	s := edgetopo.Summarize(nodes)
	fmt.Println(s.Count, s.ByLevel[edgetopo.LevelDataCenter], len(s.ByBlock))
	// Output:
	// 1300 1 12
}

// Moves the Melbourne data center onto Dublin.
func ExampleLocation_Shift() {
	dc := edgetopo.DefaultConfig.Root
	moved := dc.Shift(edgetopo.MelbourneToDublin)
	fmt.Printf("%.4f, %.4f\n", moved.Latitude, moved.Longitude)
	// Output:
	// 53.3386, -6.2619
}

func ExampleConfig_Validate() {
	config := edgetopo.DefaultConfig
	config.Count = 0
	fmt.Println(config.Validate())
	// Output:
	// invalid argument: Config.Count must satisfy gte=1, got 0
}
