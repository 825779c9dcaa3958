// Command benchrun measures skip list throughput over synthetic key streams
// and prints a per-phase summary table.
package main

import (
	"cmp"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/drdavis65/jrsl"
	"github.com/drdavis65/jrsl/internal/datagen"
)

var phases = []string{"insert", "search", "rank", "remove"}

func main() {
	var (
		n    int
		ops  int
		runs int
		seed uint64
		p    float64
		dist string
		a    float64
		b    float64
	)

	flag.IntVar(&n, "n", 1<<16, "key space size")
	flag.IntVar(&ops, "ops", 1<<18, "operations per phase")
	flag.IntVar(&runs, "runs", 5, "how many times to repeat the benchmark")
	flag.Uint64Var(&seed, "seed", uint64(time.Now().UnixNano()), "seed for the key generator")
	flag.Float64Var(&p, "p", 0.5, "level promotion probability")
	flag.StringVar(&dist, "dist", "uniform", "key distribution: uniform or zipf")
	flag.Float64Var(&a, "a", 1.07, "Zipf parameter a")
	flag.Float64Var(&b, "b", 0.0, "Zipf parameter b")
	flag.Parse()

	fmt.Printf("dist: %s, n: %d, ops: %d, runs: %d, p: %.2f\n", dist, n, ops, runs, p)

	durations := make(map[string][]float64, len(phases))
	for run := 0; run < runs; run++ {
		keys, err := makeKeys(dist, n, ops, seed+uint64(run), a, b)
		if err != nil {
			log.Fatal(err)
		}
		for phase, ms := range runOnce(keys, n, p) {
			durations[phase] = append(durations[phase], ms)
		}
	}

	rows := make([][]string, 0, len(phases))
	for _, phase := range phases {
		ms := durations[phase]
		avg := average(ms)
		rows = append(rows, []string{
			phase,
			fmt.Sprintf("%d", runs),
			fmt.Sprintf("%.3f", avg),
			fmt.Sprintf("%.3f", minOf(ms)),
			fmt.Sprintf("%.3f", maxOf(ms)),
			fmt.Sprintf("%.2f", float64(ops)/(avg/1000.0)),
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Phase", "Runs", "Avg(ms)", "Min(ms)", "Max(ms)", "Ops/s"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

func makeKeys(dist string, n, ops int, seed uint64, a, b float64) ([]int, error) {
	keys := make([]int, ops)
	switch dist {
	case "uniform":
		gen := datagen.NewUniform(n, seed)
		for i := range keys {
			keys[i] = gen.Next()
		}
	case "zipf":
		gen := datagen.NewZipf(n, a, b, seed)
		for i := range keys {
			keys[i] = gen.Next()
		}
	default:
		return nil, fmt.Errorf("unknown distribution %q", dist)
	}
	return keys, nil
}

// runOnce builds a fresh list and times each phase over the key stream.
func runOnce(keys []int, n int, p float64) map[string]float64 {
	list, err := jrsl.New[int, int](cmp.Compare[int],
		jrsl.WithProbability(p),
		jrsl.WithMaxLevel(jrsl.RecommendedMaxLevel(n, p)),
	)
	if err != nil {
		log.Fatal(err)
	}

	result := make(map[string]float64, len(phases))

	start := time.Now()
	for _, k := range keys {
		list.Insert(k, k)
	}
	result["insert"] = msSince(start)

	start = time.Now()
	for _, k := range keys {
		list.Get(k)
	}
	result["search"] = msSince(start)

	start = time.Now()
	size := list.Len()
	for i := range keys {
		list.KeyAt(i % size)
	}
	result["rank"] = msSince(start)

	start = time.Now()
	for _, k := range keys {
		list.Remove(k)
	}
	result["remove"] = msSince(start)

	return result
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func minOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
