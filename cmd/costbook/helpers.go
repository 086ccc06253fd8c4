// Shared helpers for costbook CLI commands.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fabrica-tools/costbook/internal/memory"
	"github.com/fabrica-tools/costbook/internal/repository"
	"github.com/fabrica-tools/costbook/internal/sqlite"
	"github.com/fabrica-tools/costbook/pkg/types"
)

// attachStore resolves the data directory, creates the configured store
// backend, and attaches it. The caller must defer store.Detach().
func attachStore() (types.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := configBackend
	if backend == "" {
		backend = defaultBackend
	}

	cfg := types.Config{
		Backend: backend,
		DataDir: dataDir,
	}

	var store types.Store
	switch cfg.Backend {
	case types.BackendMemory:
		store = memory.NewStore()
	default:
		store = sqlite.NewStore()
	}

	if err := store.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}

	return store, nil
}

// openRepository attaches the store and hydrates the repository from it.
// The caller must defer store.Detach().
func openRepository(ctx context.Context) (*repository.Repository, types.Store, error) {
	store, err := attachStore()
	if err != nil {
		return nil, nil, err
	}

	repo, err := repository.Open(ctx, store)
	if err != nil {
		store.Detach()
		return nil, nil, fmt.Errorf("open repository: %w", err)
	}

	return repo, store, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal JSON:", err)
		os.Exit(exitSysError)
	}
	fmt.Println(string(out))
}

// fail prints the error and exits with the given code. Validation rejects
// are user errors; storage failures are system errors, so commands pick
// the code with failCode.
func fail(code int, prefix string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, err)
	os.Exit(code)
}

// failCode maps an operation error to an exit code: storage failures are
// system errors, everything else is a user error.
func failCode(err error) int {
	if types.IsStorage(err) {
		return exitSysError
	}
	return exitUserError
}
