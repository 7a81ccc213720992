package main

import (
	"os"
	"path/filepath"
	"testing"
)

// withFlags points the command-line flags at test values for one test
func withFlags(t *testing.T, maps string, mission int, debug bool) {
	t.Helper()
	oldMaps, oldMission, oldDebug := *mapsFlag, *missionFlag, *debugFlag
	*mapsFlag, *missionFlag, *debugFlag = maps, mission, debug
	t.Cleanup(func() {
		*mapsFlag, *missionFlag, *debugFlag = oldMaps, oldMission, oldDebug
	})
}

func TestRunRejectsUnknownMission(t *testing.T) {
	dir := inTempDir(t)
	withFlags(t, "", 99, true)

	if code := run(); code != 1 {
		t.Fatalf("Expected exit code 1, got %d", code)
	}

	if _, err := os.Stat(filepath.Join(dir, logDir, logFileName)); err != nil {
		t.Errorf("Expected debug log written by run: %v", err)
	}
}

func TestRunRejectsBadMapFile(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "maps.json")
	if err := os.WriteFile(path, []byte(`[{"grid": [[0]], "missile_allowance": 1}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	withFlags(t, path, -1, false)

	if code := run(); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
}
