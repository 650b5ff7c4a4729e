package token

import (
	"context"
)

// Tokens implements grpc credentials.PerRPCCredentials with a static
// deployment token. No exchange or expiry yet, every call sends the
// same metadata.
type Tokens struct {
}

func (t *Tokens) GetRequestMetadata(ctx context.Context, uri ...string) (map[string]string, error) {
	return map[string]string{"authorization": "token qrstash"}, nil
}

func (t *Tokens) RequireTransportSecurity() bool {
	return false
}
