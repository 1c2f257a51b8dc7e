// Where: internal/forge/script.go
// What: forge script command construction.
// Why: Keep the deployment invocation in one place.
package forge

// Binary is the forge executable, resolved from PATH.
const Binary = "forge"

// ScriptOptions describes one forge script deployment invocation.
type ScriptOptions struct {
	Script          string
	Contract        string
	RPCURL          string
	EtherscanAPIKey string
	VerifierURL     string
	ExtraArgs       []string
}

// Args builds the argument list for `forge script`. The flag set matches
// a broadcast-and-verify deployment at maximum verbosity; ExtraArgs are
// appended last so they can override nothing and add anything.
func (o ScriptOptions) Args() []string {
	args := []string{
		"script", o.Script + ":" + o.Contract,
		"--rpc-url", o.RPCURL,
		"--etherscan-api-key", o.EtherscanAPIKey,
		"--verifier-url", o.VerifierURL,
		"--broadcast", "--verify", "-vvvv",
	}
	return append(args, o.ExtraArgs...)
}
