package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tourgeo/pointset"
	"github.com/katalvlaran/tourgeo/tsp"
)

// EdgeRecord is one tour edge in the report.
type EdgeRecord struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Report is the printable outcome of one run.
type Report struct {
	RunID     string       `yaml:"run_id"`
	Input     string       `yaml:"input"`
	Solver    string       `yaml:"solver"`
	Points    int          `yaml:"points"`
	Cost      float64      `yaml:"cost"`
	ElapsedMS float64      `yaml:"elapsed_ms"`
	Steps     int          `yaml:"steps"`
	Order     []int        `yaml:"order"`
	Edges     []EdgeRecord `yaml:"edges"`
}

func newReport(runID, input, solver string, ps *pointset.PointSet, res tsp.Result) (Report, error) {
	order, err := tsp.Order(res.Tour)
	if err != nil {
		return Report{}, err
	}

	rep := Report{
		RunID:     runID,
		Input:     input,
		Solver:    solver,
		Points:    ps.Len(),
		Cost:      res.Cost,
		ElapsedMS: float64(res.Elapsed.Microseconds()) / 1000,
		Steps:     res.Steps,
		Order:     make([]int, len(order)),
		Edges:     make([]EdgeRecord, len(res.Tour)),
	}
	for i, k := range order {
		rep.Order[i] = int(k)
	}
	for i, e := range res.Tour {
		rep.Edges[i] = EdgeRecord{From: int(e.From), To: int(e.To)}
	}
	return rep, nil
}

// write renders the report as "text" or "yaml".
func (r Report) write(w io.Writer, format string) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	}

	_, err := fmt.Fprintf(w, "Solved.  Cost: %.6f, Time: %.3fms, Steps: %d\nOrder: %v\n",
		r.Cost, r.ElapsedMS, r.Steps, r.Order)
	return err
}
