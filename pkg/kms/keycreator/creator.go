/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package keycreator generates Ed25519 signing keypairs for the agent's
// public DID and keeps the private halves in memory.
package keycreator

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"sync"

	"github.com/btcsuite/btcutil/base58"
)

// Creator generates Ed25519 keypairs and retains the private keys, indexed by
// the base58 verification key.
type Creator struct {
	mu   sync.RWMutex
	keys map[string]ed25519.PrivateKey
}

// New creates Creator.
func New() *Creator {
	return &Creator{keys: map[string]ed25519.PrivateKey{}}
}

// CreateKeyPair generates a new keypair and returns the base58 verification
// key.
func (c *Creator) CreateKeyPair(_ context.Context) (string, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return "", fmt.Errorf("generate ed25519 keypair: %w", err)
	}

	verKey := base58.Encode(pub)

	c.mu.Lock()
	c.keys[verKey] = priv
	c.mu.Unlock()

	return verKey, nil
}

// SigningKey returns the private key for the given verification key, if this
// creator generated it.
func (c *Creator) SigningKey(verKey string) (ed25519.PrivateKey, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	priv, ok := c.keys[verKey]

	return priv, ok
}
