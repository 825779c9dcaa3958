package jrsl

import (
	"fmt"
	"io"
)

// Fprint writes a row per populated level, highest first, showing each
// node's key and the span of its outgoing edge. Intended for debugging and
// demos; the output format is not stable.
func (sl *SkipList[K, V]) Fprint(w io.Writer) {
	for i := sl.level - 1; i >= 0; i-- {
		fmt.Fprintf(w, "level %d : head", i)
		for x := sl.head; x != nil; x = x.tower[i].to {
			if x.tower[i].to == nil {
				break
			}
			fmt.Fprintf(w, " -(%d)-> %v", x.tower[i].span, x.tower[i].to.key)
		}
		fmt.Fprintln(w, " -> nil")
	}
}
