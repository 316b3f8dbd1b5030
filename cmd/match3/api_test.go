package main

import (
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
)

func TestRunAPIReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer busy.Close()

	oldDB, oldAddr := flagDBPath, flagAPIAddr
	t.Cleanup(func() { flagDBPath, flagAPIAddr = oldDB, oldAddr })
	flagDBPath = filepath.Join(t.TempDir(), "api.db")
	flagAPIAddr = busy.Addr().String()

	err = runAPI(apiCmd, nil)
	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("runAPI() = %v, want a listen error", err)
	}
}

func TestRunAPIReportsBadDatabase(t *testing.T) {
	oldDB := flagDBPath
	t.Cleanup(func() { flagDBPath = oldDB })
	// The database directory would have to live under a regular file.
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	flagDBPath = filepath.Join(file, "scores.db")

	if err := runAPI(apiCmd, nil); err == nil {
		t.Fatal("runAPI() with an unusable database path should fail")
	}
}
