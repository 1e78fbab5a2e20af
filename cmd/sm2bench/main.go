// Command sm2bench compares SM2 signing and verification with and without
// the fixed-base table, including parallel batch verification.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/f3rmion/sm2/batch"
	"github.com/f3rmion/sm2/sm2"
)

type result struct {
	sign   time.Duration
	verify time.Duration
	batch  time.Duration
}

func main() {
	n := flag.Int("n", 100, "number of signatures")
	workers := flag.Int("workers", 0, "batch verification workers (0 = one per CPU)")
	hashName := flag.String("hash", "sha256", "message hash: sha256, sm3 or blake2b")
	msg := flag.String("msg", "Test data for SM2 performance", "message to sign")
	flag.Parse()

	if *n < 1 {
		log.Fatalf("-n must be positive, got %d", *n)
	}
	hasher, err := sm2.HasherByName(*hashName)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== SM2 performance comparison ===")
	fmt.Printf("message: %q, hash: %s, signatures: %d\n\n", *msg, hasher.Name(), *n)

	runs := make(map[bool]result, 2)
	for _, optimized := range []bool{false, true} {
		cfg := sm2.DefaultConfig()
		cfg.Hasher = hasher
		cfg.EnableOptimizations = optimized

		start := time.Now()
		engine := sm2.New(cfg)
		fmt.Printf("[%s] engine ready in %v\n", engine.Strategy(), time.Since(start))

		res, err := run(engine, []byte(*msg), *n, *workers)
		if err != nil {
			log.Fatalf("%s run failed: %v", engine.Strategy(), err)
		}
		runs[optimized] = res

		fmt.Printf("  sign:          %v/op\n", res.sign)
		fmt.Printf("  verify:        %v/op\n", res.verify)
		fmt.Printf("  batch verify:  %v/op\n\n", res.batch)
	}

	base, opt := runs[false], runs[true]
	fmt.Println("=== speed-up (baseline / optimized) ===")
	fmt.Printf("  sign:          %.2fx\n", ratio(base.sign, opt.sign))
	fmt.Printf("  verify:        %.2fx\n", ratio(base.verify, opt.verify))
	fmt.Printf("  batch verify:  %.2fx\n", ratio(base.batch, opt.batch))
	fmt.Printf("  parallel gain: %.2fx\n", ratio(opt.verify, opt.batch))
}

func run(engine *sm2.Engine, msg []byte, n, workers int) (result, error) {
	key, err := engine.GenerateKey(rand.Reader)
	if err != nil {
		return result{}, fmt.Errorf("key generation: %w", err)
	}

	sigs := make([]*sm2.Signature, n)
	start := time.Now()
	for i := range sigs {
		sigs[i], err = engine.Sign(rand.Reader, key, msg)
		if err != nil {
			return result{}, fmt.Errorf("sign %d: %w", i, err)
		}
	}
	signTime := time.Since(start)

	start = time.Now()
	for i, sig := range sigs {
		if !engine.Verify(msg, sig, key.Q) {
			return result{}, fmt.Errorf("signature %d did not verify", i)
		}
	}
	verifyTime := time.Since(start)

	jobs := make([]batch.Job, n)
	for i, sig := range sigs {
		jobs[i] = batch.Job{Message: msg, Signature: sig, PublicKey: key.Q}
	}
	verifier := batch.New(engine, workers)
	start = time.Now()
	ok := verifier.AllValid(jobs)
	batchTime := time.Since(start)
	if !ok {
		return result{}, fmt.Errorf("batch verification rejected a valid signature")
	}

	per := time.Duration(n)
	return result{
		sign:   signTime / per,
		verify: verifyTime / per,
		batch:  batchTime / per,
	}, nil
}

func ratio(a, b time.Duration) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}
