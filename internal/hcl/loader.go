package hcl

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/gatesim/internal/config"
	"github.com/specialistvlad/gatesim/internal/ctxlog"
	"github.com/specialistvlad/gatesim/internal/fsutil"
)

// ErrNoFiles is returned when none of the paths holds an .hcl file.
var ErrNoFiles = errors.New("no .hcl files found")

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load parses every .hcl file under paths and merges them into one job.
// Exactly one netlist block must be present across all files; simulation
// and tmr blocks are optional and may appear at most once.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Job, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(".hcl", paths...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %v", ErrNoFiles, paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	job := &config.Job{}
	var netlistFile, simulationFile, tmrFile string

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, nb := range root.Netlists {
			if job.Netlist != nil {
				return nil, fmt.Errorf("netlist %q in %s: netlist %q already declared in %s", nb.Name, file, job.Netlist.Name, netlistFile)
			}
			job.Netlist = translateNetlist(nb)
			netlistFile = file
		}
		for _, sb := range root.Simulations {
			if job.Inputs != nil {
				return nil, fmt.Errorf("simulation block in %s: already declared in %s", file, simulationFile)
			}
			inputs, err := decodeInputs(sb)
			if err != nil {
				return nil, fmt.Errorf("simulation block in %s: %w", file, err)
			}
			job.Inputs = inputs
			simulationFile = file
		}
		for _, tb := range root.TMR {
			if tmrFile != "" {
				return nil, fmt.Errorf("tmr block in %s: already declared in %s", file, tmrFile)
			}
			job.Harden = tb.Targets
			tmrFile = file
		}
	}

	if job.Netlist == nil {
		return nil, fmt.Errorf("no netlist block found in %d file(s)", len(files))
	}
	logger.Debug("HCL loading complete.",
		"netlist", job.Netlist.Name,
		"instances", len(job.Netlist.Instances),
		"inputs", len(job.Inputs),
		"tmr_targets", len(job.Harden),
	)
	return job, nil
}

// translateNetlist converts the HCL-specific netlist schema into the agnostic model.
func translateNetlist(nb *netlistBlock) *config.Netlist {
	nl := &config.Netlist{
		Name:    nb.Name,
		Inputs:  nb.Inputs,
		Outputs: nb.Outputs,
		Wires:   nb.Wires,
	}
	for _, ib := range nb.Instances {
		nl.Instances = append(nl.Instances, &config.Instance{
			Kind:  ib.Kind,
			Name:  ib.Name,
			Ports: ib.Ports,
			Init:  ib.Init,
		})
	}
	return nl
}
