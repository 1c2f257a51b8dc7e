// Where: internal/app/envcmd_test.go
// What: Tests for the env inspection commands.
// Why: Operators rely on env check before touching mainnet.
package app

import (
	"strings"
	"testing"
)

func TestEnvListShowsNetworks(t *testing.T) {
	deps, out := testDeps(t, &fakeRunner{})
	writeEnvFile(t, deps.WorkDir, "mainnet", completeEnv)
	writeEnvFile(t, deps.WorkDir, "testnet", completeEnv)
	writeEnvFile(t, deps.WorkDir, "example", "")

	if code := Run([]string{"env", "list"}, deps); code != 0 {
		t.Fatalf("expected exit 0\n%s", out.String())
	}
	listing := out.String()
	for _, want := range []string{"mainnet", "testnet"} {
		if !strings.Contains(listing, want) {
			t.Fatalf("missing %s in listing: %s", want, listing)
		}
	}
	if strings.Contains(listing, "example") {
		t.Fatalf(".env.example should be excluded: %s", listing)
	}
}

func TestEnvListEmpty(t *testing.T) {
	deps, out := testDeps(t, &fakeRunner{})
	if code := Run([]string{"env", "list"}, deps); code != 0 {
		t.Fatalf("expected exit 0")
	}
	if !strings.Contains(out.String(), "No network env files found.") {
		t.Fatalf("unexpected output: %s", out.String())
	}
}

func TestEnvCheckComplete(t *testing.T) {
	deps, out := testDeps(t, &fakeRunner{})
	writeEnvFile(t, deps.WorkDir, "testnet", completeEnv)

	if code := Run([]string{"env", "check", "testnet"}, deps); code != 0 {
		t.Fatalf("expected exit 0\n%s", out.String())
	}
	if strings.Contains(out.String(), "MISSING") {
		t.Fatalf("unexpected missing keys: %s", out.String())
	}
}

func TestEnvCheckReportsMissing(t *testing.T) {
	deps, out := testDeps(t, &fakeRunner{})
	writeEnvFile(t, deps.WorkDir, "testnet", "RPC_URL=https://example.test\n")

	if code := Run([]string{"env", "check", "testnet"}, deps); code != 1 {
		t.Fatalf("expected exit 1")
	}
	report := out.String()
	if !strings.Contains(report, "MISSING") {
		t.Fatalf("missing keys not flagged: %s", report)
	}
	if !strings.Contains(report, "2 required key(s) missing.") {
		t.Fatalf("summary missing: %s", report)
	}
}

func TestEnvCheckMissingFile(t *testing.T) {
	deps, out := testDeps(t, &fakeRunner{})
	if code := Run([]string{"env", "check", "testnet"}, deps); code != 1 {
		t.Fatalf("expected exit 1")
	}
	if !strings.Contains(out.String(), "does not exist") {
		t.Fatalf("unexpected output: %s", out.String())
	}
}
