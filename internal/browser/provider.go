package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/linkvault/linkvault/internal/domain"
)

// TreeProvider hands out a snapshot of the browser bookmark tree.
// Implementations must report domain.ErrPlatformCapability when the
// tree cannot be obtained, so the caller aborts without writing.
type TreeProvider interface {
	Tree(ctx context.Context) ([]Node, error)
}

// FileProvider reads a JSON bookmark-tree export (the root-level node
// sequence, typically the toolbar and "other" containers) from disk.
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider reading from the given path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (p *FileProvider) Tree(ctx context.Context) ([]Node, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrPlatformCapability, p.path, err)
	}

	var tree []Node
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrPlatformCapability, p.path, err)
	}
	return tree, nil
}

// StaticProvider serves a fixed tree. Used by tests.
type StaticProvider struct {
	Nodes []Node
	Err   error
}

func (p *StaticProvider) Tree(ctx context.Context) ([]Node, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Nodes, nil
}
