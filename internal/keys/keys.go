// Package keys turns pairs of mnemonic phrases into reproducible Solana keypairs.
package keys

import (
	"crypto/ed25519"
	"crypto/sha512"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/vulpemventures/go-bip39"
	"golang.org/x/crypto/pbkdf2"
)

const (
	entropyBits     = 128 // 12 words
	seedIterations  = 2048
	seedLen         = 64
	seedSaltPrefix  = "mnemonic"
	fingerprintHead = 5
	fingerprintTail = 4
)

// GenerateSecretPhrase returns a fresh 12-word mnemonic
func GenerateSecretPhrase() (string, error) {
	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return "", &CryptoError{Kind: EntropyFailure, Err: err}
	}
	defer clear(entropy)

	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", &CryptoError{Kind: EntropyFailure, Err: err}
	}
	return phrase, nil
}

// DeriveKeypair derives the keypair for a seed phrase and passphrase.
// The same inputs always give the same keypair. The PBKDF2 seed construction
// matches solana-keygen's seed-phrase-with-passphrase recovery, so phrases stay
// usable outside this wallet.
func DeriveKeypair(seedPhrase, passphrase string) (solana.PrivateKey, error) {
	if !bip39.IsMnemonicValid(seedPhrase) {
		return nil, &CryptoError{Kind: InvalidPhrase, Err: errors.New("seed phrase is not a valid mnemonic")}
	}
	if !bip39.IsMnemonicValid(passphrase) {
		return nil, &CryptoError{Kind: InvalidPhrase, Err: errors.New("passphrase is not a valid mnemonic")}
	}

	seed := pbkdf2.Key([]byte(seedPhrase), []byte(seedSaltPrefix+passphrase), seedIterations, seedLen, sha512.New)
	defer clear(seed)

	return solana.PrivateKey(ed25519.NewKeyFromSeed(seed[:ed25519.SeedSize])), nil
}

// PublicKeyOf returns the base58 public key of a keypair
func PublicKeyOf(key solana.PrivateKey) string {
	return key.PublicKey().String()
}

// Fingerprint shortens a public key for display: first 5 and last 4 characters.
// Public keys are fixed length, so a shorter input is a programming error and panics.
func Fingerprint(pubkey string) string {
	if len(pubkey) < fingerprintHead+fingerprintTail {
		panic(fmt.Sprintf("keys: public key %q too short for fingerprint", pubkey))
	}
	return pubkey[:fingerprintHead] + "..." + pubkey[len(pubkey)-fingerprintTail:]
}
