// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/djkoloski/aoc-2025/machine"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// run executes one invocation and returns the process exit code:
// 0 on success, 1 when the input cannot be read or solved, 2 on bad usage.
func run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	log.SetLevel(logrus.InfoLevel)

	fs := flag.NewFlagSet("day10", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "YAML config file")
		flagCfg    = DefaultConfig()
	)
	fs.IntVar(&flagCfg.Workers, "workers", flagCfg.Workers, "goroutines enumerating one machine's joltage search")
	fs.IntVar(&flagCfg.Parallelism, "parallel", flagCfg.Parallelism, "machines solved concurrently")
	fs.IntVar(&flagCfg.MaxButtons, "max-buttons", flagCfg.MaxButtons, "largest button count the light search accepts")
	fs.Uint64Var(&flagCfg.MaxCombinations, "max-combinations", flagCfg.MaxCombinations, "largest free-variable search space")
	fs.Float64Var(&flagCfg.Tolerance, "tolerance", flagCfg.Tolerance, "integrality tolerance for back-substituted presses")
	fs.BoolVar(&flagCfg.Verbose, "v", false, "log per-machine results")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: day10 [flags] <input>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			log.Error(err)
			return 2
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "workers":
			cfg.Workers = flagCfg.Workers
		case "parallel":
			cfg.Parallelism = flagCfg.Parallelism
		case "max-buttons":
			cfg.MaxButtons = flagCfg.MaxButtons
		case "max-combinations":
			cfg.MaxCombinations = flagCfg.MaxCombinations
		case "tolerance":
			cfg.Tolerance = flagCfg.Tolerance
		case "v":
			cfg.Verbose = flagCfg.Verbose
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: ", err)
		return 2
	}
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	log.WithFields(cfg.Fields()).Debug("config")

	machines, err := readMachines(fs.Arg(0))
	if err != nil {
		log.Error(err)
		return 1
	}
	log.WithField("machines", len(machines)).Debug("parsed input")

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	opts := append(cfg.Options(), machine.WithOnSolved(func(i int, part machine.Part, presses int) {
		log.WithFields(logrus.Fields{
			"machine": i,
			"part":    part,
			"presses": presses,
		}).Debug("solved")
	}))
	for _, p := range []struct {
		name string
		part machine.Part
	}{
		{"one", machine.PartLights},
		{"two", machine.PartJoltage},
	} {
		start := time.Now()
		sum, err := machine.SumPart(ctx, machines, p.part, opts...)
		if err != nil {
			log.WithField("part", p.part).Error(err)
			return 1
		}
		fmt.Fprintf(out, "Solved part %s in %g seconds\n", p.name, time.Since(start).Seconds())
		fmt.Fprintln(out, sum)
	}

	return 0
}

func readMachines(path string) ([]machine.Machine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	ms, err := machine.ParseAll(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ms, nil
}
