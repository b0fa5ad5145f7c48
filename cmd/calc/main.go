package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zephyrtronium/calc"
)

func main() {
	var (
		inname, verb, batchname, loglevel string
		echo                              bool
		maxlen                            int
	)
	flag.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	flag.StringVar(&batchname, "batch", "", "YAML file of named expressions")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.IntVar(&maxlen, "maxlen", 0, "maximum expression length in runes (0 for no limit)")
	flag.BoolVar(&echo, "echo", false, "print each expression before its result")
	flag.StringVar(&loglevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flag.Parse()

	level, err := zerolog.ParseLevel(loglevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Str("service", "calc").Logger().
		Level(level)

	var jobs []job
	if batchname != "" {
		b, err := loadBatch(batchname)
		if err != nil {
			logger.Fatal().Err(err).Str("file", batchname).Msg("failed to load batch")
		}
		if maxlen == 0 {
			maxlen = b.MaxLen
		}
		jobs = append(jobs, b.jobs()...)
	}
	f, err := infile(inname, flag.NArg() == 0 && batchname == "")
	if err != nil {
		logger.Fatal().Err(err).Str("file", inname).Msg("failed to open input")
	}
	if f != nil {
		lines, err := readLines(f)
		f.Close()
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to read input")
		}
		jobs = append(jobs, lines...)
	}
	for _, arg := range flag.Args() {
		jobs = append(jobs, job{expr: arg})
	}

	ev := calc.New(calc.MaxLen(maxlen))
	logger.Debug().Int("expressions", len(jobs)).Int("maxlen", maxlen).Msg("evaluating")
	if failed := evalAll(os.Stdout, ev, jobs, verb, echo, logger); failed > 0 {
		logger.Info().Int("failed", failed).Msg("some expressions did not evaluate")
		os.Exit(1)
	}
}

// job is one expression to evaluate. name is empty except in batches.
type job struct {
	name string
	expr string
}

// evalAll evaluates each job and writes its result or error to w. The result
// is the number of jobs that failed.
func evalAll(w io.Writer, ev *calc.Evaluator, jobs []job, verb string, echo bool, logger zerolog.Logger) int {
	failed := 0
	verb += "\n"
	for _, j := range jobs {
		if echo {
			if j.name != "" {
				fmt.Fprintf(w, "%s: ", j.name)
			}
			fmt.Fprintf(w, "%s = ", j.expr)
		}
		r, err := ev.EvalString(j.expr)
		if err != nil {
			failed++
			logger.Debug().Err(err).Str("name", j.name).Str("expr", j.expr).Msg("evaluation failed")
			fmt.Fprintln(w, err)
			continue
		}
		logger.Debug().Str("name", j.name).Str("expr", j.expr).Float64("result", r).Msg("evaluated")
		fmt.Fprintf(w, verb, r)
	}
	return failed
}

// readLines reads one job per line, skipping blank lines.
func readLines(r io.Reader) ([]job, error) {
	var jobs []job
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		jobs = append(jobs, job{expr: line})
	}
	return jobs, sc.Err()
}

// infile opens the input named by -in. The result is nil if there is no
// input to read. The caller closes it.
func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}
