// Package hcl loads property package files. It parses and decodes them
// against the schema structs, binds configured method names against the
// registry, and hands the translated definition to model.Build.
package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/flashkit/internal/ctxlog"
	"github.com/vk/flashkit/internal/model"
	"github.com/vk/flashkit/internal/registry"
	"github.com/vk/flashkit/internal/schema"
)

// Loader parses property package files and resolves the method names they
// reference against a populated registry.
type Loader struct {
	registry *registry.Registry
}

// NewLoader creates a new property package loader.
func NewLoader(r *registry.Registry) *Loader {
	return &Loader{registry: r}
}

// Load reads, decodes and builds the property package in the given file.
// The file must contain exactly one property_package block.
func (l *Loader) Load(ctx context.Context, path string) (*model.ParameterBlock, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}
	return l.load(ctx, path, file.Body)
}

// LoadSource is Load for in-memory file contents; filename is used in
// diagnostics only.
func (l *Loader) LoadSource(ctx context.Context, src []byte, filename string) (*model.ParameterBlock, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, diags)
	}
	return l.load(ctx, filename, file.Body)
}

func (l *Loader) load(ctx context.Context, name string, body hcl.Body) (*model.ParameterBlock, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Property package loader started.", "file", name)

	var root schema.PackageFile
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", name, diags)
	}
	if len(root.Packages) != 1 {
		return nil, fmt.Errorf(
			"%s must contain exactly one property_package block, found %d",
			name, len(root.Packages))
	}

	def, err := l.translatePackage(root.Packages[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	pb, err := model.Build(def)
	if err != nil {
		return nil, err
	}

	logger.Debug("Property package loaded.",
		"name", pb.BlockName(),
		"components", len(pb.ComponentNames()),
		"phases", len(pb.PhaseNames()))
	return pb, nil
}
