package app

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/gatesim/internal/builder"
	"github.com/specialistvlad/gatesim/internal/ctxlog"
	"github.com/specialistvlad/gatesim/internal/graph"
	"github.com/specialistvlad/gatesim/internal/report"
	"github.com/specialistvlad/gatesim/internal/sim"
	"github.com/specialistvlad/gatesim/internal/tmr"
)

// ErrTMRChangedOutputs is returned when the hardened graph does not
// reproduce the outputs of the original one.
var ErrTMRChangedOutputs = errors.New("hardened circuit changed the outputs")

// Run builds the graph, simulates it, applies TMR and writes the
// requested reports.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	g, err := builder.Build(ctx, a.job.Netlist)
	if err != nil {
		return fmt.Errorf("failed to build circuit graph: %w", err)
	}
	a.logger.Info("Circuit graph built.", "netlist", g.Name, "nodes", g.NumNodes(), "edges", g.NumEdges())

	inputs, simulate := a.inputs()
	var before map[string]bool
	if simulate {
		res, err := sim.Simulate(ctx, g, inputs, sim.WithWorkers(a.cfg.Workers))
		if err != nil {
			return fmt.Errorf("simulation failed: %w", err)
		}
		a.logger.Info("Simulation finished.", "passes", res.Passes, "evaluated", res.Evaluated)
		if err := report.WriteOutputs(a.outW, res.Outputs); err != nil {
			return err
		}
		before = res.Outputs
	} else {
		a.logger.Warn("No simulation inputs given, skipping simulation.")
	}

	targets := a.targets()
	if a.cfg.DotPath != "" {
		if err := a.writeDOT(a.cfg.DotPath, g); err != nil {
			return err
		}
	}
	if len(targets) > 0 {
		if err := a.harden(ctx, g, targets, inputs, before); err != nil {
			return err
		}
		if a.cfg.DotPath != "" {
			if err := a.writeDOT(TMRPath(a.cfg.DotPath), g); err != nil {
				return err
			}
		}
	}
	if a.cfg.Adjacency {
		if err := report.WriteAdjacency(a.outW, g); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// inputs merges the job's inputs with the overrides from Config. A
// netlist without primary inputs can always be simulated.
func (a *App) inputs() (map[string]bool, bool) {
	if a.job.Inputs == nil && a.cfg.Inputs == nil && len(a.job.Netlist.Inputs) > 0 {
		return nil, false
	}
	merged := make(map[string]bool, len(a.job.Inputs)+len(a.cfg.Inputs))
	maps.Copy(merged, a.job.Inputs)
	maps.Copy(merged, a.cfg.Inputs)
	return merged, true
}

func (a *App) targets() []string {
	return append(append([]string(nil), a.job.Harden...), a.cfg.Harden...)
}

// harden applies TMR and, when the circuit was simulated, checks that the
// hardened graph produces the same outputs.
func (a *App) harden(ctx context.Context, g *graph.Graph, targets []string, inputs, before map[string]bool) error {
	if err := tmr.Apply(ctx, g, targets); err != nil {
		return fmt.Errorf("tmr failed: %w", err)
	}
	a.logger.Info("TMR applied.", "targets", targets, "nodes", g.NumNodes(), "edges", g.NumEdges())

	if before == nil {
		fmt.Fprintf(a.outW, "tmr: hardened %d instance(s)\n", len(targets))
		return nil
	}
	res, err := sim.Simulate(ctx, g, inputs, sim.WithWorkers(a.cfg.Workers))
	if err != nil {
		return fmt.Errorf("simulation after tmr failed: %w", err)
	}
	if diff := cmp.Diff(before, res.Outputs); diff != "" {
		a.logger.Error("Hardened outputs differ.", "diff", diff)
		return ErrTMRChangedOutputs
	}
	fmt.Fprintf(a.outW, "tmr: hardened %d instance(s), outputs unchanged\n", len(targets))
	return nil
}

// TMRPath returns the file the hardened graph is written to when the
// plain graph goes to path: "out.dot" becomes "out_TMR.dot".
func TMRPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_TMR" + ext
}

func (a *App) writeDOT(path string, g *graph.Graph) error {
	if err := writeDOTFile(path, g); err != nil {
		return err
	}
	a.logger.Info("Graph written.", "path", path, "nodes", g.NumNodes())
	return nil
}

func writeDOTFile(path string, g *graph.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dot file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return report.WriteDOT(f, g)
}
