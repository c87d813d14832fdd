package sorting

// Stats reports the work done by BubbleSortWithStats.
type Stats struct {
	// Passes is the number of full sweeps over the unsorted prefix.
	Passes int

	// Swaps is the number of adjacent exchanges performed.
	Swaps int
}
