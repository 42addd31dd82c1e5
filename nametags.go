package etherscan

import "context"

// NametagsService wraps the address metadata module, which only exists on
// mainnet-class chains.
type NametagsService struct {
	client *Client
}

// AddressNametag is the explorer's public label for an address.
type AddressNametag struct {
	Address  string   `json:"address"`
	Nametag  string   `json:"nametag"`
	URL      string   `json:"url"`
	Labels   []string `json:"labels"`
	Verified string   `json:"verified"`
}

// AddressTag returns the public nametag listing for an address.
func (s *NametagsService) AddressTag(ctx context.Context, address string) ([]AddressNametag, error) {
	if err := s.client.guard(); err != nil {
		return nil, err
	}
	if err := s.client.requireCapability("Nametags.AddressTag", CapabilityNametags); err != nil {
		return nil, err
	}
	if err := checkAddress("address", address); err != nil {
		return nil, err
	}
	p := Params{"module": "nametag", "action": "getaddresstag", "address": address}
	return call(ctx, s.client, s.client.canonicalEndpoint(), p, SliceSchema[AddressNametag]())
}
