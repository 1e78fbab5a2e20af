// Package sm2 implements the SM2 digital signature algorithm over a
// [group.Group], by default the SM2 recommended curve from the sm2p256
// package.
//
// # Signing
//
// Given a private scalar d with public key Q = d*G, a signature of msg is
// the pair (r, s) with
//
//	e = H(msg) mod n
//	(x1, y1) = k*G           for a fresh nonce k in [1, n-1]
//	r = (e + x1) mod n       retry if r == 0 or r + k == n
//	s = (1 + d)^-1 * (k - r*d) mod n   retry if s == 0
//
// Degenerate nonces are retried in a bounded loop inside [Engine.Sign].
//
// # Verification
//
// [Engine.Verify] rejects r or s outside [1, n-1], computes t = r + s,
// rejects t == 0, and accepts iff r == e + x1 (mod n) where
// (x1, y1) = s*G + t*Q is not the point at infinity. It never returns an
// error: every failure is reported as false.
//
// # Configuration
//
// [Config] picks the group, the [Hasher] and whether base-point
// multiplications go through a precomputed fixed-base table. Both settings
// of EnableOptimizations produce identical signatures for the same nonce.
//
//	engine := sm2.New(sm2.DefaultConfig())
//	key, _ := engine.GenerateKey(rand.Reader)
//	sig, _ := engine.Sign(rand.Reader, key, []byte("hello"))
//	ok := engine.Verify([]byte("hello"), sig, key.Q)
//
// # Deviation from GM/T 0003
//
// The standard hashes Z_A || M, where Z_A binds the signer's identity and
// public key. This package hashes M alone. Signatures are therefore not
// interoperable with standard SM2 implementations.
//
// # Randomness
//
// All randomness comes from the io.Reader passed to [Engine.GenerateKey]
// and [Engine.Sign]. Use crypto/rand.Reader in production.
package sm2
