package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/hailam/chessrules/internal/perft"
	"github.com/hailam/chessrules/internal/storage"
	"github.com/hailam/chessrules/internal/uci"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	threads    = flag.Int("threads", 0, "goroutines for perft (0 = sequential)")
	persist    = flag.Bool("cache", false, "keep perft results in the on-disk cache")
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

	var cache perft.Cache = perft.NewMemoryCache()
	if *persist {
		pc, err := openCache()
		if err != nil {
			log.Printf("Warning: perft cache not available: %v (using memory)", err)
		} else {
			defer pc.Close()
			cache = pc
		}
	}

	protocol := uci.New(os.Stdin, os.Stdout)
	protocol.SetPerftCache(cache, *threads)
	if err := protocol.Run(); err != nil {
		log.Printf("input error: %v", err)
	}
}

// openCache opens the perft cache in the default location.
func openCache() (*storage.PerftCache, error) {
	dir, err := storage.GetCacheDir()
	if err != nil {
		return nil, err
	}
	return storage.OpenPerftCache(dir)
}
