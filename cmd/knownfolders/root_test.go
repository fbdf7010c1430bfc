package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

// TestRootCmdSetup tests the initialization of the root command and its subcommands.
func TestRootCmdSetup(t *testing.T) {
	// Explicitly use cobra type to ensure import is recognized
	var _ *cobra.Command = rootCmd

	if rootCmd == nil {
		t.Fatal("rootCmd is nil after init")
	}

	expectedUse := "knownfolders"
	if rootCmd.Use != expectedUse {
		t.Errorf("expected command Use %q, got %q", expectedUse, rootCmd.Use)
	}

	for _, use := range []string{"version", "resolve [folder]", "list"} {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Use == use {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not found", use)
		}
	}
}

func TestResolveUnknownFolder(t *testing.T) {
	cmd := newResolveCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"NotAFolder"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected an error for an unknown folder name")
	}
}

func TestListRunsOverWholeCatalog(t *testing.T) {
	var out bytes.Buffer
	cmd := newListCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	// Off Windows every entry reports the unsupported-platform error;
	// on Windows it reports paths and classified errors. Either way the
	// command itself succeeds and prints one line per catalog entry.
	if err := cmd.Execute(); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !bytes.Contains(out.Bytes(), []byte("Profile")) {
		t.Errorf("expected output to mention Profile, got:\n%s", out.String())
	}
}
