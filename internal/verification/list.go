package verification

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/feral-file/ff-marketplace-indexer/internal/adapter"
	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
)

// List is the desired verification state read from the data file:
//
//	verified:
//	  - 0x1d92D9a839e9c5D8cc02A7F87E591fF1AdA33268
//	unverified:
//	  - 0x8a68B243B97C8F7E81C347418F48775D7890d0fa
//	inversors:
//	  - 0x06b3cC29D74a36f15F1B2beD529Fe45E30CAaf12
type List struct {
	Verified   []string `yaml:"verified"`
	Unverified []string `yaml:"unverified"`
	Inversors  []string `yaml:"inversors"`
}

// LoadList reads and validates a verification list file
func LoadList(fs adapter.FileSystem, path string) (*List, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read verification list: %w", err)
	}
	return ParseList(data)
}

// ParseList decodes a verification list. Addresses are checksummed and deduplicated,
// and an address may not be both verified and unverified.
func ParseList(data []byte) (*List, error) {
	var raw List
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse verification list: %w", err)
	}

	var list List
	var err error
	if list.Verified, err = normalizeAll("verified", raw.Verified); err != nil {
		return nil, err
	}
	if list.Unverified, err = normalizeAll("unverified", raw.Unverified); err != nil {
		return nil, err
	}
	if list.Inversors, err = normalizeAll("inversors", raw.Inversors); err != nil {
		return nil, err
	}

	verified := make(map[string]struct{}, len(list.Verified))
	for _, addr := range list.Verified {
		verified[addr] = struct{}{}
	}
	for _, addr := range list.Unverified {
		if _, ok := verified[addr]; ok {
			return nil, fmt.Errorf("address %s is listed as both verified and unverified", addr)
		}
	}

	return &list, nil
}

func normalizeAll(section string, addresses []string) ([]string, error) {
	seen := make(map[string]struct{}, len(addresses))
	out := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		if !domain.IsValidAddress(addr) {
			return nil, fmt.Errorf("invalid address in %s: %q", section, addr)
		}
		addr = domain.NormalizeAddress(addr)
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		out = append(out, addr)
	}
	return out, nil
}
