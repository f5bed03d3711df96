package browser

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/linkvault/linkvault/internal/domain"
)

func TestFileProviderReadsTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.json")
	data := `[{"id":"1","title":"Bar","children":[{"id":"2","title":"x","url":"https://x.example.com"}]}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	tree, err := NewFileProvider(path).Tree(context.Background())
	if err != nil {
		t.Fatalf("Tree() error = %v", err)
	}
	if len(tree) != 1 || len(tree[0].Children) != 1 {
		t.Fatalf("Tree() = %+v, want one root with one child", tree)
	}
	if tree[0].Children[0].URL != "https://x.example.com" {
		t.Errorf("child URL = %q", tree[0].Children[0].URL)
	}
}

func TestFileProviderMissingFile(t *testing.T) {
	p := NewFileProvider(filepath.Join(t.TempDir(), "nope.json"))

	_, err := p.Tree(context.Background())
	if !errors.Is(err, domain.ErrPlatformCapability) {
		t.Errorf("Tree() on missing file error = %v, want ErrPlatformCapability", err)
	}
}

func TestFileProviderMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewFileProvider(path).Tree(context.Background())
	if !errors.Is(err, domain.ErrPlatformCapability) {
		t.Errorf("Tree() on malformed file error = %v, want ErrPlatformCapability", err)
	}
}
