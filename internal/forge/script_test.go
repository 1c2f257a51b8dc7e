// Where: internal/forge/script_test.go
// What: Tests for forge script command construction.
// Why: The flag list is the contract with the external tool.
package forge

import (
	"reflect"
	"testing"
)

func TestScriptOptionsArgs(t *testing.T) {
	opts := ScriptOptions{
		Script:          "script/deploy.s.sol",
		Contract:        "DeployTaxiSwapMessenger",
		RPCURL:          "https://example.test",
		EtherscanAPIKey: "abc123",
		VerifierURL:     "https://verify.test/api",
	}

	want := []string{
		"script", "script/deploy.s.sol:DeployTaxiSwapMessenger",
		"--rpc-url", "https://example.test",
		"--etherscan-api-key", "abc123",
		"--verifier-url", "https://verify.test/api",
		"--broadcast", "--verify", "-vvvv",
	}
	if got := opts.Args(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected args:\n got %v\nwant %v", got, want)
	}
}

func TestScriptOptionsExtraArgsAppended(t *testing.T) {
	opts := ScriptOptions{
		Script:    "script/deploy.s.sol",
		Contract:  "DeployTaxiSwapMessenger",
		ExtraArgs: []string{"--slow", "--legacy"},
	}

	args := opts.Args()
	if len(args) < 2 {
		t.Fatalf("unexpected args: %v", args)
	}
	tail := args[len(args)-2:]
	if !reflect.DeepEqual(tail, []string{"--slow", "--legacy"}) {
		t.Fatalf("extra args not appended last: %v", args)
	}
}
