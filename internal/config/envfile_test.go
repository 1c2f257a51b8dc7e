// Where: internal/config/envfile_test.go
// What: Tests for network env file loading.
// Why: Lock down the first-separator split and last-write-wins rules.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeEnvFile(t *testing.T, dir, network, content string) string {
	t.Helper()
	path := EnvFilePath(dir, network)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	return path
}

func TestLoadEnvFileParsesPairs(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, "testnet",
		"RPC_URL=https://example.test\n"+
			"ETHERSCAN_API_KEY=abc123\n"+
			"this line has no separator\n"+
			"\n"+
			"VERIFIER_URL=https://verify.test/api?sig=a=b\n"+
			"  PADDED=value\t\n"+
			"RPC_URL=https://override.test\n")

	env, err := LoadEnvFile(dir, "testnet")
	if err != nil {
		t.Fatalf("load env file: %v", err)
	}

	wantKeys := []string{"RPC_URL", "ETHERSCAN_API_KEY", "VERIFIER_URL", "PADDED"}
	if !reflect.DeepEqual(env.Keys(), wantKeys) {
		t.Fatalf("unexpected keys: %v", env.Keys())
	}
	if got := env.Get("RPC_URL"); got != "https://override.test" {
		t.Fatalf("expected last value to win, got %s", got)
	}
	if got := env.Get("VERIFIER_URL"); got != "https://verify.test/api?sig=a=b" {
		t.Fatalf("value with separators mangled: %s", got)
	}
	if got := env.Get("PADDED"); got != "value" {
		t.Fatalf("line not trimmed: %q", got)
	}
	if _, ok := env.Lookup("this line has no separator"); ok {
		t.Fatalf("separator-less line should be skipped")
	}
}

func TestLoadEnvFileEnvironKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, "testnet", "B=2\nA=1\nB=3\n")

	env, err := LoadEnvFile(dir, "testnet")
	if err != nil {
		t.Fatalf("load env file: %v", err)
	}
	want := []string{"B=3", "A=1"}
	if !reflect.DeepEqual(env.Environ(), want) {
		t.Fatalf("unexpected environ: %v", env.Environ())
	}
}

func TestLoadEnvFileMissing(t *testing.T) {
	_, err := LoadEnvFile(t.TempDir(), "mainnet")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestEnvFileMissingKeys(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, "testnet", "RPC_URL=https://example.test\nETHERSCAN_API_KEY=   \n")

	env, err := LoadEnvFile(dir, "testnet")
	if err != nil {
		t.Fatalf("load env file: %v", err)
	}

	missing := env.Missing(RequiredKeys...)
	want := []string{"ETHERSCAN_API_KEY", "VERIFIER_URL"}
	if !reflect.DeepEqual(missing, want) {
		t.Fatalf("unexpected missing keys: %v", missing)
	}
}

func TestListEnvFiles(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, "mainnet", "A=1\n")
	writeEnvFile(t, dir, "testnet", "A=1\n")
	writeEnvFile(t, dir, "example", "A=1\n")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("A=1\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	networks, err := ListEnvFiles(dir)
	if err != nil {
		t.Fatalf("list env files: %v", err)
	}
	want := []string{"mainnet", "testnet"}
	if !reflect.DeepEqual(networks, want) {
		t.Fatalf("unexpected networks: %v", networks)
	}
}
