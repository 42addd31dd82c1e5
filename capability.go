package etherscan

import "fmt"

// Capability names a remote feature that only exists on certain chains.
// Namespace methods gate on these before any network traffic so calling an
// unsupported method fails immediately with a typed error instead of
// burning a request on a guaranteed remote failure.
type Capability string

const (
	CapabilityGasTracker Capability = "gas_tracker"
	CapabilityNametags   Capability = "nametags"
	CapabilityL2Bridge   Capability = "l2_bridge"
)

var capabilityChains = map[Capability]map[int64]struct{}{
	CapabilityGasTracker: {
		ChainEthereum: {}, ChainBNB: {}, ChainPolygon: {},
		ChainBase: {}, ChainArbitrumOne: {}, ChainOptimism: {},
	},
	CapabilityNametags: {
		ChainEthereum: {},
	},
	CapabilityL2Bridge: {
		ChainOptimism: {}, ChainBase: {}, ChainArbitrumOne: {}, ChainArbitrumNova: {},
		ChainZkSyncEra: {}, ChainScroll: {}, ChainBlast: {}, ChainLinea: {},
	},
}

// requireCapability rejects methods unavailable on the configured chain.
func (c *Client) requireCapability(method string, cap Capability) error {
	chains, ok := capabilityChains[cap]
	if !ok {
		return nil
	}
	if _, ok := chains[c.chainID]; !ok {
		return newError(ErrorKindUnsupported, "unsupported_method", 0,
			fmt.Sprintf("%s requires the %s capability, which chain %d does not provide", method, cap, c.chainID))
	}
	return nil
}

// ChainSupports reports whether the client's configured chain provides a
// capability, letting callers probe before invoking a gated method.
func (c *Client) ChainSupports(cap Capability) bool {
	chains, ok := capabilityChains[cap]
	if !ok {
		return true
	}
	_, ok = chains[c.chainID]
	return ok
}
