package community_test

import (
	"fmt"

	"github.com/katalvlaran/knowsgen/community"
)

// ExamplePartition groups a small degree-sorted population: the dense
// head becomes the core and absorbs the sparse tail as periphery.
func ExamplePartition() {
	infos := []community.PersonInfo{
		{Index: 0, Degree: 4, OriginalDegree: 4},
		{Index: 1, Degree: 4, OriginalDegree: 4},
		{Index: 2, Degree: 4, OriginalDegree: 4},
		{Index: 3, Degree: 2, OriginalDegree: 2},
		{Index: 4, Degree: 2, OriginalDegree: 2},
	}

	for _, c := range community.Partition(infos, community.DefaultOptions()) {
		fmt.Printf("community %d: core=%d periphery=%d\n", c.ID, len(c.Core), len(c.Periphery))
	}
	// Output: community 0: core=3 periphery=2
}
