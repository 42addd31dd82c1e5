package etherscan

import (
	"context"
	"fmt"
	"strings"
)

// ContractsService wraps the "contract" module.
type ContractsService struct {
	client *Client
}

// ContractSource is one verified source listing.
type ContractSource struct {
	SourceCode           string `json:"SourceCode"`
	ABI                  string `json:"ABI"`
	ContractName         string `json:"ContractName"`
	CompilerVersion      string `json:"CompilerVersion"`
	OptimizationUsed     string `json:"OptimizationUsed"`
	Runs                 string `json:"Runs"`
	ConstructorArguments string `json:"ConstructorArguments"`
	EVMVersion           string `json:"EVMVersion"`
	Library              string `json:"Library"`
	LicenseType          string `json:"LicenseType"`
	Proxy                string `json:"Proxy"`
	Implementation       string `json:"Implementation"`
	SwarmSource          string `json:"SwarmSource"`
}

// ContractCreation pairs a contract with its deployer and creation tx.
type ContractCreation struct {
	ContractAddress string `json:"contractAddress"`
	ContractCreator string `json:"contractCreator"`
	TxHash          string `json:"txHash"`
}

const maxCreationAddresses = 5

// ABI returns the verified ABI of a contract as a JSON string.
func (s *ContractsService) ABI(ctx context.Context, address string) (string, error) {
	if err := s.client.guard(); err != nil {
		return "", err
	}
	if err := checkAddress("address", address); err != nil {
		return "", err
	}
	p := Params{"module": "contract", "action": "getabi", "address": address}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, StringSchema())
}

// SourceCode returns the verified source listing of a contract.
func (s *ContractsService) SourceCode(ctx context.Context, address string) ([]ContractSource, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if err := checkAddress("address", address); err != nil {
		return nil, err
	}
	p := Params{"module": "contract", "action": "getsourcecode", "address": address}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, SliceSchema[ContractSource]())
}

// Creation returns deployer and creation transaction for up to 5
// contracts.
func (s *ContractsService) Creation(ctx context.Context, addresses []string) ([]ContractCreation, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if len(addresses) == 0 {
		return nil, validationError("empty_address_list", "contractaddresses: at least one address is required")
	}
	if len(addresses) > maxCreationAddresses {
		return nil, validationError("address_list_too_long",
			fmt.Sprintf("contractaddresses: %d addresses given, maximum is %d", len(addresses), maxCreationAddresses))
	}
	for i, a := range addresses {
		if err := checkAddress(fmt.Sprintf("contractaddresses[%d]", i), a); err != nil {
			return nil, err
		}
	}
	p := Params{
		"module":            "contract",
		"action":            "getcontractcreation",
		"contractaddresses": strings.Join(addresses, ","),
	}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, SliceSchema[ContractCreation]())
}
