// Command demo builds a small skip list, prints its level structure and
// walks it in order with a label printer.
package main

import (
	"cmp"
	"fmt"
	"log"
	"os"

	"github.com/drdavis65/jrsl"
)

func main() {
	const p = 0.5

	keys := []int{3, 6, 7, 12, 19, 17, 26, 21, 25, 21}
	data := []byte{'b', 'g', 'g', 'm', 'l', 'u', 'l', 't', 'w', 'c'}

	maxLevel := jrsl.RecommendedMaxLevel(len(keys), p)
	fmt.Printf("max level: %d\n", maxLevel)

	list, err := jrsl.New[int, byte](cmp.Compare[int],
		jrsl.WithProbability(p),
		jrsl.WithMaxLevel(maxLevel),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("\nEmpty skip list")
	list.Fprint(os.Stdout)

	fmt.Println("\nInserting elements")
	for i, k := range keys {
		list.Insert(k, data[i])
	}
	list.Fprint(os.Stdout)

	fmt.Printf("\n%d elements in order\n", list.Len())
	list.ForEach(func(k int, v byte) bool {
		fmt.Printf("%d:%c ", k, v)
		return true
	})
	fmt.Println()
}
