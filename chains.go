package etherscan

// Chain identifiers accepted by the V2 unified endpoint. The routing id is
// the EVM chain id; any id the remote service supports may be passed to
// WithChain, these constants just cover the common ones.
const (
	ChainEthereum     int64 = 1
	ChainSepolia      int64 = 11155111
	ChainHolesky      int64 = 17000
	ChainBNB          int64 = 56
	ChainPolygon      int64 = 137
	ChainOptimism     int64 = 10
	ChainBase         int64 = 8453
	ChainArbitrumOne  int64 = 42161
	ChainArbitrumNova int64 = 42170
	ChainZkSyncEra    int64 = 324
	ChainScroll       int64 = 534352
	ChainLinea        int64 = 59144
	ChainBlast        int64 = 81457
	ChainGnosis       int64 = 100
	ChainAvalanche    int64 = 43114
	ChainFantom       int64 = 250
	ChainCelo         int64 = 42220
)

const (
	defaultAPIURL       = "https://api.etherscan.io/v2/api"
	defaultChainListURL = "https://api.etherscan.io/v2/chainlist"
)
