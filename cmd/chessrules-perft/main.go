// chessrules-perft counts legal move tree nodes for a position.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/hailam/chessrules/internal/notation"
	"github.com/hailam/chessrules/internal/perft"
	"github.com/hailam/chessrules/internal/storage"
)

var (
	fen        = flag.String("fen", notation.StartFEN, "position to count from")
	depth      = flag.Int("depth", 4, "search depth in plies")
	divide     = flag.Bool("divide", false, "print node counts per root move")
	parallel   = flag.Int("parallel", 0, "split root moves over N goroutines (0 = sequential)")
	useCache   = flag.Bool("cache", false, "persist node counts in the perft cache")
	cacheDir   = flag.String("cachedir", "", "perft cache directory (default: data dir, or $"+storage.EnvCacheDir+")")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	b, err := notation.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("bad position: %v", err)
	}

	var cache perft.Cache
	if *useCache {
		pc, err := openCache()
		if err != nil {
			log.Printf("Warning: perft cache not available: %v (counting without it)", err)
		} else {
			defer func() {
				if err := pc.Err(); err != nil {
					log.Printf("Warning: perft cache error: %v", err)
				}
				pc.Close()
			}()
			cache = pc
		}
	}

	start := time.Now()
	var nodes int64
	var results []perft.Result

	switch {
	case *parallel > 0:
		nodes, results, err = perft.CountParallel(context.Background(), b, *depth, *parallel, cache)
		if err != nil {
			log.Fatalf("perft failed: %v", err)
		}
	case *divide:
		results = perft.Divide(b, *depth, cache)
		for _, r := range results {
			nodes += r.Nodes
		}
	default:
		nodes = perft.Count(b, *depth, cache)
	}

	if *divide {
		for _, r := range results {
			fmt.Printf("%s: %d\n", r.Move, r.Nodes)
		}
		fmt.Println()
	}

	elapsed := time.Since(start)
	fmt.Printf("Nodes: %d\n", nodes)
	fmt.Printf("Time: %s\n", elapsed.Round(time.Millisecond))
	if secs := elapsed.Seconds(); secs > 0 {
		fmt.Printf("NPS: %.0f\n", float64(nodes)/secs)
	}
}

// openCache opens the perft cache from -cachedir or the default location.
func openCache() (*storage.PerftCache, error) {
	dir := *cacheDir
	if dir == "" {
		var err error
		if dir, err = storage.GetCacheDir(); err != nil {
			return nil, err
		}
	}
	return storage.OpenPerftCache(dir)
}
