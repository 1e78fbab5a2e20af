// Package batch verifies many SM2 signatures in parallel.
//
// A [Verifier] owns a fixed number of worker goroutines per call. Workers
// share the engine, and with it the precomputed base point table, by
// pointer; the engine is never mutated after construction, so no locking
// is needed. Results are returned in input order:
//
//	v := batch.New(engine, 0) // one worker per CPU
//	results := v.Verify(jobs)
//	for i, ok := range results {
//		if !ok {
//			log.Printf("signature %d rejected", i)
//		}
//	}
//
// A malformed job (nil signature, nil key, out-of-range components) is
// simply reported as false. Verification never stops early.
package batch
