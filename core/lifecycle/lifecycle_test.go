package lifecycle

import (
	"os"
	"path/filepath"
	"testing"

	"barrel/core/config"
	"barrel/core/logger"
	"barrel/core/registry"
)

func newRegistry(t *testing.T) (*registry.Registry, string) {
	t.Helper()
	wd := t.TempDir()
	component := filepath.Join(wd, "components", "Button", "index.tsx")
	if err := os.MkdirAll(filepath.Dir(component), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(component, []byte("export default {}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(wd, "index.js"), nil, 0o644); err != nil {
		t.Fatalf("create output: %v", err)
	}

	cfg := config.Config{
		Base:      ".",
		Output:    "index.js",
		Header:    "// generated\n",
		Pattern:   "**/index.tsx",
		Recursive: true,
	}
	return registry.New(cfg, wd, logger.Nop{}), wd
}

func TestEnvironmentInitWritesBarrel(t *testing.T) {
	reg, _ := newRegistry(t)
	hooks := Bind(reg, logger.Nop{})

	hooks.OnEnvironmentInit()

	data, err := os.ReadFile(reg.Output())
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "// generated\nexport { default as Button } from './components/Button'\n"
	if string(data) != want {
		t.Fatalf("got %q, want %q", data, want)
	}
}

func TestBuildStartRegeneratesOnChange(t *testing.T) {
	reg, wd := newRegistry(t)
	hooks := Bind(reg, logger.Nop{})
	hooks.OnEnvironmentInit()

	card := filepath.Join(wd, "components", "Card", "index.tsx")
	if err := os.MkdirAll(filepath.Dir(card), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(card, []byte("export default {}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	signalled := false
	hooks.OnBuildStart(func() { signalled = true })

	if !signalled {
		t.Fatal("done was not signalled")
	}

	data, err := os.ReadFile(reg.Output())
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "// generated\n" +
		"export { default as Button } from './components/Button'\n" +
		"export { default as Card } from './components/Card'\n"
	if string(data) != want {
		t.Fatalf("got %q, want %q", data, want)
	}
}

func TestBuildStartSkipsWriteWhenUnchanged(t *testing.T) {
	reg, _ := newRegistry(t)
	hooks := Bind(reg, logger.Nop{})
	hooks.OnEnvironmentInit()

	// Clobber the output by hand; an unchanged component set must not
	// trigger a rewrite.
	if err := os.WriteFile(reg.Output(), []byte("sentinel"), 0o644); err != nil {
		t.Fatalf("write sentinel: %v", err)
	}

	signalled := false
	hooks.OnWatchRebuild(func() { signalled = true })

	if !signalled {
		t.Fatal("done was not signalled")
	}

	data, err := os.ReadFile(reg.Output())
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "sentinel" {
		t.Fatal("output rewritten despite unchanged component set")
	}
}

func TestHooksAbsorbMissingBase(t *testing.T) {
	cfg := config.Config{
		Base:      "does-not-exist",
		Output:    "index.js",
		Pattern:   "**/index.tsx",
		Recursive: true,
	}
	reg := registry.New(cfg, t.TempDir(), logger.Nop{})
	hooks := Bind(reg, logger.Nop{})

	// Must not panic or abort the host; errors are reported and absorbed.
	hooks.OnEnvironmentInit()

	signalled := false
	hooks.OnBuildStart(func() { signalled = true })
	if !signalled {
		t.Fatal("done must be signalled even when the registry fails")
	}
}
