package oauth

import (
	"encoding/json"
	"fmt"

	"github.com/lestrrat-go/jwx/v2/jwk"
)

// KeyInfo describes one public key published in the provider's JWKS.
type KeyInfo struct {
	KeyID     string `json:"kid"`
	KeyType   string `json:"kty"`
	Algorithm string `json:"alg,omitempty"`
	Use       string `json:"use,omitempty"`
}

// SummarizeJWKS parses a JWKS response object and lists its keys in the
// order they were published. No key is used for verification here.
func SummarizeJWKS(result map[string]any) ([]KeyInfo, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JWKS: %w", err)
	}

	set, err := jwk.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWKS: %w", err)
	}

	keys := make([]KeyInfo, 0, set.Len())
	for i := 0; i < set.Len(); i++ {
		key, ok := set.Key(i)
		if !ok {
			continue
		}

		info := KeyInfo{
			KeyID:   key.KeyID(),
			KeyType: key.KeyType().String(),
			Use:     key.KeyUsage(),
		}
		if alg := key.Algorithm(); alg != nil {
			info.Algorithm = alg.String()
		}
		keys = append(keys, info)
	}

	return keys, nil
}
