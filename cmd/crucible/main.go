// Crucible finds the cheapest route for a heat-loss crucible across a
// city-block grid, where the crucible's steering is limited by how many
// blocks it has already travelled in a straight line.
//
// Usage:
//
//	# Solve a grid under the standard and extended policies
//	crucible solve --input day17.txt
//
//	# Only the extended policy, printing the route and metrics
//	crucible solve --input day17.txt --policy extended --path --metrics
//
//	# Custom policies from a configuration file
//	crucible solve --config crucible.yaml
//
//	# Show version information
//	crucible version
package main

func main() {
	Execute()
}
