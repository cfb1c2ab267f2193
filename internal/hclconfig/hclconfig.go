// Package hclconfig loads a declarative HCL target file into a
// target.Registry, adapted from the teacher's internal/hcl_adapter
// loader (hclparse.NewParser + gohcl.DecodeBody over a fileRoot struct)
// — narrowed from the teacher's runner/asset/step/resource grid schema
// to this domain's target/final/build_failure schema.
//
// A target file looks like:
//
//	target "compile" {
//	  description = "compile the service binary"
//	  hard_deps   = ["fetch-deps"]
//	  soft_deps   = ["lint"]
//	}
//
//	final "cleanup" {
//	  activated = true
//	}
//
//	build_failure "notify-oncall" {
//	  activated = true
//	}
//
// Target bodies authored this way are no-ops: a declarative target
// file can only describe names, descriptions, and edges. Giving such a
// target a real body requires registering one in Go against the same
// name before the file is loaded (CreateTarget rejects duplicates, so
// the Go registration has to come first; Load then only attaches edges
// to the existing target, and a description in the file applies only
// to targets the file itself creates). All target blocks of a file are
// created before any edge is added, so a dependency may name a block
// declared further down the same file.
package hclconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/buildgrid/internal/target"
)

type targetBlock struct {
	Name        string   `hcl:"name,label"`
	Description string   `hcl:"description,optional"`
	HardDeps    []string `hcl:"hard_deps,optional"`
	SoftDeps    []string `hcl:"soft_deps,optional"`
}

type hookBlock struct {
	Name      string `hcl:"name,label"`
	Activated bool   `hcl:"activated,optional"`
}

type fileRoot struct {
	Targets      []*targetBlock `hcl:"target,block"`
	FinalHooks   []*hookBlock   `hcl:"final,block"`
	FailureHooks []*hookBlock   `hcl:"build_failure,block"`
	Remain       hcl.Body       `hcl:",remain"`
}

// Load parses every .hcl file under paths (files or directories,
// walked recursively) and applies the target/final/build_failure
// blocks found to reg. Targets declared here with no pre-existing
// Go-registered body get a nil Body (the executor's runBody treats a
// nil Body as an instant no-op success).
func Load(reg *target.Registry, paths ...string) error {
	files, err := findHCLFiles(paths)
	if err != nil {
		return err
	}

	parser := hclparse.NewParser()
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return fmt.Errorf("hclconfig: failed to parse %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return fmt.Errorf("hclconfig: failed to decode %s: %w", file, diags)
		}

		if err := applyRoot(reg, &root); err != nil {
			return fmt.Errorf("hclconfig: %s: %w", file, err)
		}
	}
	return nil
}

func applyRoot(reg *target.Registry, root *fileRoot) error {
	for _, tb := range root.Targets {
		if _, err := reg.GetTarget(tb.Name); err == nil {
			continue
		}
		if tb.Description != "" {
			if err := reg.SetDescription(tb.Description); err != nil {
				return err
			}
		}
		if _, err := reg.CreateTarget(tb.Name, nil); err != nil {
			return err
		}
	}
	for _, tb := range root.Targets {
		if len(tb.HardDeps) > 0 {
			if err := reg.AddHardDependencies(tb.Name, tb.HardDeps); err != nil {
				return err
			}
		}
		if len(tb.SoftDeps) > 0 {
			if err := reg.AddSoftDependencies(tb.Name, tb.SoftDeps); err != nil {
				return err
			}
		}
	}

	for _, hb := range root.FinalHooks {
		if _, err := reg.GetTarget(hb.Name); err != nil {
			if _, err := reg.RegisterFinal(hb.Name, nil); err != nil {
				return err
			}
		}
		if hb.Activated {
			if err := reg.ActivateFinal(hb.Name); err != nil {
				return err
			}
		}
	}

	for _, hb := range root.FailureHooks {
		if _, err := reg.GetTarget(hb.Name); err != nil {
			if _, err := reg.RegisterBuildFailure(hb.Name, nil); err != nil {
				return err
			}
		}
		if hb.Activated {
			if err := reg.ActivateBuildFailure(hb.Name); err != nil {
				return err
			}
		}
	}

	return nil
}

// findHCLFiles walks all given paths and returns a flat, deduplicated
// list of all .hcl files found — ported from the teacher's
// findAllHCLFiles.
func findHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			err := filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !info.IsDir() && filepath.Ext(p) == ".hcl" {
					if _, wasSeen := seen[p]; !wasSeen {
						allFiles = append(allFiles, p)
						seen[p] = struct{}{}
					}
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		} else if filepath.Ext(path) == ".hcl" {
			if _, wasSeen := seen[path]; !wasSeen {
				allFiles = append(allFiles, path)
				seen[path] = struct{}{}
			}
		}
	}
	return allFiles, nil
}
