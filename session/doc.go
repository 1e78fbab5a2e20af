// Package session provides a high-level API for SM2 signing. It wraps the
// engine in the [sm2] package with a handle that owns a key pair and its
// randomness source, so application code never passes nonces or readers
// around.
//
// For full control over nonces, hashing and key encoding, use the [sm2]
// package directly.
//
// # Signing
//
//	engine := sm2.New(sm2.DefaultConfig())
//
//	signer, err := session.NewSigner(engine, rand.Reader)
//	if err != nil {
//		return err
//	}
//
//	sig, err := signer.Sign(message)
//	if err != nil {
//		return err
//	}
//
// A saved key is brought back with [Restore]:
//
//	key, err := engine.ParsePrivateKey(saved)
//	if err != nil {
//		return err
//	}
//	signer, err := session.Restore(engine, rand.Reader, key)
//
// # Verification
//
// [Verify] reports failure as an error, which fits call sites that already
// propagate errors:
//
//	if err := session.Verify(engine, message, sig, signer.PublicKey()); err != nil {
//		return err
//	}
//
// A Signer may be shared between goroutines. Its randomness source is
// guarded by a mutex, so readers that are not safe for concurrent use,
// such as a seeded test reader, work as well.
package session
