// File: gridcost/example_test.go
package gridcost_test

import (
	"fmt"

	"github.com/katalvlaran/crucible/gridcost"
)

// ExampleParseString demonstrates parsing the textual digit form and
// looking up entry costs.
func ExampleParseString() {
	g, err := gridcost.ParseString("2413\n3215\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	c, _ := g.CostAt(g.Goal())
	fmt.Printf("%dx%d start=%s goal=%s goal-cost=%d min=%d\n",
		g.Width, g.Height, g.Start(), g.Goal(), c, g.MinCost())
	// Output:
	// 4x2 start=(0,0) goal=(3,1) goal-cost=5 min=1
}
