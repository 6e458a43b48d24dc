// Command magus-sat is a DIMACS CNF solver front-end for internal/sat.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/yusuke-matsunaga/magus-sub008/internal/dimacs"
	"github.com/yusuke-matsunaga/magus-sub008/internal/sat"
)

const (
	exitUnknown = 0
	exitSat     = 10
	exitUnsat   = 20
)

var (
	flagCPUProfile  = flag.String("cpuprofile", "", "write a pprof CPU profile to this file")
	flagMemProfile  = flag.String("memprofile", "", "write a pprof heap profile to this file")
	flagGzip        = flag.Bool("gzip", false, "treat the instance file as gzip-compressed")
	flagMaxConflict = flag.Int64("max-conflict", -1, "stop after this many conflicts (-1 for unlimited)")
	flagTimeout     = flag.Duration("timeout", -1, "stop after this long (-1 for unlimited)")
	flagQuiet       = flag.Bool("quiet", false, "suppress the progress report")
)

type config struct {
	instanceFile string
	gzip         bool
	maxConflict  int64
	timeout      time.Duration
	quiet        bool
	cpuProfile   string
	memProfile   string
}

func parseConfig() (*config, error) {
	flag.Parse()
	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		gzip:         *flagGzip,
		maxConflict:  *flagMaxConflict,
		timeout:      *flagTimeout,
		quiet:        *flagQuiet,
		cpuProfile:   *flagCPUProfile,
		memProfile:   *flagMemProfile,
	}, nil
}

func run(cfg *config) (sat.Status, error) {
	params := sat.DefaultParams
	params.MaxConflicts = cfg.maxConflict
	params.Timeout = cfg.timeout
	s := sat.NewSolver(params)

	if err := dimacs.LoadDIMACS(cfg.instanceFile, cfg.gzip, s); err != nil {
		return sat.StatusUnknown, fmt.Errorf("could not load instance: %s", err)
	}

	if !cfg.quiet {
		s.RegisterMessageHandler(sat.TextMessageHandler{W: os.Stdout})
	}

	fmt.Printf("c variables:  %d\n", s.NumVariables())
	fmt.Printf("c clauses:    %d\n", s.NumConstraints())

	t := time.Now()
	status := s.Solve(nil)
	elapsed := time.Since(t)

	stats := s.GetStats()
	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c conflicts:  %d (%.2f /sec)\n", stats.Conflicts, float64(stats.Conflicts)/elapsed.Seconds())
	fmt.Printf("c status:     %s\n", status.String())

	return status, nil
}

func exitCode(status sat.Status) int {
	switch status {
	case sat.StatusSat:
		return exitSat
	case sat.StatusUnsat:
		return exitUnsat
	default:
		return exitUnknown
	}
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	cpuProfiling := false
	if cfg.cpuProfile != "" {
		f, err := os.Create(cfg.cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		cpuProfiling = true
	}

	status, err := run(cfg)

	// os.Exit below bypasses deferred calls, so the profile must be
	// stopped (flushed to disk) explicitly before every exit path.
	if cpuProfiling {
		pprof.StopCPUProfile()
	}

	if err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile != "" {
		f, err := os.Create(cfg.memProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}

	os.Exit(exitCode(status))
}
