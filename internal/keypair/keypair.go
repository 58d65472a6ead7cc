// Package keypair handles wallet key pairs and the conversion between base64
// public keys and bech32 "fra" addresses.
package keypair

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/gabapcia/utxokit/internal/ledger"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// AddressPrefix is the human-readable part of every wallet address.
const AddressPrefix = "fra"

// publicKeySize is the size in bytes of a ledger public key.
const publicKeySize = 32

var (
	// ErrInvalidPublicKey is returned when a public key does not decode to 32 bytes.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidAddress is returned when an address is not a bech32 "fra" address.
	ErrInvalidAddress = errors.New("invalid address")
)

// LightWalletKeyPair identifies a wallet without its secret material.
type LightWalletKeyPair struct {
	Address   string `json:"address"`
	PublicKey string `json:"publickey"`
}

// WalletKeyPair is a wallet able to sign: its identity plus the ledger key pair.
type WalletKeyPair struct {
	LightWalletKeyPair

	KeyPair    ledger.KeyPair `json:"-"`
	PrivateStr string         `json:"-"`
}

// decodePublicKey accepts the padded and unpadded URL-safe base64 forms the
// ledger emits.
func decodePublicKey(publicKey string) ([]byte, error) {
	raw, err := base64.URLEncoding.DecodeString(publicKey)
	if err != nil {
		raw, err = base64.RawURLEncoding.DecodeString(publicKey)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}

	if len(raw) != publicKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPublicKey, publicKeySize, len(raw))
	}

	return raw, nil
}

// AddressFromPublicKey encodes a base64 public key as a bech32 address.
func AddressFromPublicKey(publicKey string) (string, error) {
	raw, err := decodePublicKey(publicKey)
	if err != nil {
		return "", err
	}

	data, err := bech32.ConvertBits(raw, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}

	return bech32.Encode(AddressPrefix, data)
}

// PublicKeyFromAddress decodes a bech32 address back into the base64 public key.
func PublicKeyFromAddress(address string) (string, error) {
	hrp, data, err := bech32.Decode(address)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	if hrp != AddressPrefix {
		return "", fmt.Errorf("%w: unexpected prefix %q", ErrInvalidAddress, hrp)
	}

	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	if len(raw) != publicKeySize {
		return "", fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidAddress, publicKeySize, len(raw))
	}

	return base64.URLEncoding.EncodeToString(raw), nil
}

// fromKeyPair fills in the public key and address of kp.
func fromKeyPair(ctx context.Context, km ledger.KeyManager, kp ledger.KeyPair, privateKey string) (WalletKeyPair, error) {
	publicKey, err := km.PublicKey(ctx, kp)
	if err != nil {
		return WalletKeyPair{}, fmt.Errorf("could not get public key: %w", err)
	}

	address, err := AddressFromPublicKey(publicKey)
	if err != nil {
		return WalletKeyPair{}, err
	}

	return WalletKeyPair{
		LightWalletKeyPair: LightWalletKeyPair{
			Address:   address,
			PublicKey: publicKey,
		},
		KeyPair:    kp,
		PrivateStr: privateKey,
	}, nil
}

// Restore rebuilds a wallet from its encoded private key.
func Restore(ctx context.Context, km ledger.KeyManager, privateKey string) (WalletKeyPair, error) {
	kp, err := km.KeyPairFromPrivateKey(ctx, privateKey)
	if err != nil {
		return WalletKeyPair{}, fmt.Errorf("could not restore key pair: %w", err)
	}

	return fromKeyPair(ctx, km, kp, privateKey)
}

// Create generates a new wallet.
func Create(ctx context.Context, km ledger.KeyManager) (WalletKeyPair, error) {
	kp, err := km.NewKeyPair(ctx)
	if err != nil {
		return WalletKeyPair{}, fmt.Errorf("could not create key pair: %w", err)
	}

	privateKey, err := km.PrivateKey(ctx, kp)
	if err != nil {
		return WalletKeyPair{}, fmt.Errorf("could not get private key: %w", err)
	}

	return fromKeyPair(ctx, km, kp, privateKey)
}
