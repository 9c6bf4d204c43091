// Command simulate runs scheduling policies against a workload file without
// a server. It prints the schedule table, Gantt chart, and, with -all, the
// side-by-side policy comparison.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/me/gosched/internal/logging"
	"github.com/me/gosched/internal/registry"
	"github.com/me/gosched/internal/render"
	"github.com/me/gosched/internal/sim"
	"github.com/me/gosched/internal/workload"
	"github.com/me/gosched/pkg/model"
)

func main() {
	policyFlag := flag.String("policy", "fcfs", "Policy to run: fcfs, sjf, priority, rr")
	all := flag.Bool("all", false, "Run every policy and print the comparison")
	quantum := flag.Int("quantum", 0, "Round-Robin quantum (overrides the workload's)")
	noGantt := flag.Bool("no-gantt", false, "Suppress the Gantt chart")
	logLevel := flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <workload-file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	logger := logging.NewLogger(logging.ParseLevel(*logLevel), "text")

	wl, err := workload.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	reg, err := wl.Register(registry.DefaultCapacity)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	q := wl.Quantum
	if *quantum > 0 {
		q = *quantum
	}
	logger.Info("workload loaded", "name", wl.Name, "jobs", reg.Len(), "quantum", q)

	if *all {
		runAll(reg, q, *noGantt)
		return
	}
	runOne(reg, *policyFlag, q, *noGantt)
}

func runOne(reg *registry.Registry, policy string, quantum int, noGantt bool) {
	p, err := model.ParsePolicy(policy)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	res, err := sim.Run(p, reg.Jobs(), quantum)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	render.ResultTable(os.Stdout, res)
	if !noGantt {
		fmt.Println()
		render.GanttChart(os.Stdout, res.Timeline)
	}
}

func runAll(reg *registry.Registry, quantum int, noGantt bool) {
	cmp, err := sim.CompareAll(reg.Jobs(), quantum)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for i := range cmp.Results {
		res := &cmp.Results[i]
		render.ResultTable(os.Stdout, res)
		if !noGantt {
			fmt.Println()
			render.GanttChart(os.Stdout, res.Timeline)
		}
		fmt.Println()
	}

	render.ComparisonTable(os.Stdout, cmp)
	fmt.Println()
	fmt.Println(render.AdvisoryNote)
}
