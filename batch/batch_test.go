package batch

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/sm2/bjj"
	"github.com/f3rmion/sm2/sm2"
	"github.com/f3rmion/sm2/sm2p256"
)

// buildJobs signs n messages with a few keys and corrupts every third job
// in a different way.
func buildJobs(t testing.TB, e *sm2.Engine, n int) []Job {
	keys := make([]*sm2.KeyPair, 3)
	for i := range keys {
		k, err := e.GenerateKey(rand.Reader)
		require.NoError(t, err)
		keys[i] = k
	}

	jobs := make([]Job, n)
	for i := range jobs {
		key := keys[i%len(keys)]
		msg := []byte(fmt.Sprintf("batch message %d", i))
		sig, err := e.Sign(rand.Reader, key, msg)
		require.NoError(t, err)
		jobs[i] = Job{Message: msg, Signature: sig, PublicKey: key.Q}

		if i%3 != 2 {
			continue
		}
		switch (i / 3) % 4 {
		case 0:
			jobs[i].Message = []byte("tampered")
		case 1:
			jobs[i].PublicKey = keys[(i+1)%len(keys)].Q
		case 2:
			jobs[i].Signature = &sm2.Signature{R: sig.R, S: new(big.Int).Add(sig.S, big.NewInt(1))}
		case 3:
			jobs[i].Signature = nil
		}
	}
	return jobs
}

func TestVerifyMatchesSingle(t *testing.T) {
	for _, optimized := range []bool{false, true} {
		cfg := sm2.DefaultConfig()
		cfg.EnableOptimizations = optimized
		e := sm2.New(cfg)
		jobs := buildJobs(t, e, 40)

		want := make([]bool, len(jobs))
		for i, job := range jobs {
			want[i] = e.Verify(job.Message, job.Signature, job.PublicKey)
		}

		for _, workers := range []int{1, 4, 64} {
			t.Run(fmt.Sprintf("optimized=%v/workers=%d", optimized, workers), func(t *testing.T) {
				got := New(e, workers).Verify(jobs)
				assert.Equal(t, want, got)
			})
		}
	}
}

func TestVerifyResults(t *testing.T) {
	e := sm2.New(sm2.DefaultConfig())
	jobs := buildJobs(t, e, 12)
	got := New(e, 4).Verify(jobs)

	require.Len(t, got, len(jobs))
	for i, ok := range got {
		assert.Equalf(t, i%3 != 2, ok, "job %d", i)
	}
}

func TestVerifyMalformedKeys(t *testing.T) {
	e := sm2.New(sm2.DefaultConfig())
	jobs := buildJobs(t, e, 4)
	jobs[1].PublicKey = (*sm2p256.Point)(nil)
	jobs[3].PublicKey = (&bjj.BJJ{}).Generator()

	var got []bool
	require.NotPanics(t, func() {
		got = New(e, 2).Verify(jobs)
	})
	assert.Equal(t, []bool{true, false, false, false}, got)
}

func TestAllValid(t *testing.T) {
	e := sm2.New(sm2.DefaultConfig())
	v := New(e, 2)
	jobs := buildJobs(t, e, 6)

	assert.True(t, v.AllValid(jobs[:2]))
	assert.False(t, v.AllValid(jobs))
	assert.True(t, v.AllValid(nil))
}

func TestEmptyBatch(t *testing.T) {
	v := New(sm2.New(sm2.DefaultConfig()), 8)
	assert.Empty(t, v.Verify(nil))
	assert.Empty(t, v.Verify([]Job{}))
}

func TestDefaultWorkers(t *testing.T) {
	e := sm2.New(sm2.DefaultConfig())
	assert.Equal(t, runtime.NumCPU(), New(e, 0).Workers())
	assert.Equal(t, runtime.NumCPU(), New(e, -3).Workers())
	assert.Equal(t, 5, New(e, 5).Workers())
}

func BenchmarkVerify(b *testing.B) {
	e := sm2.New(sm2.DefaultConfig())
	jobs := buildJobs(b, e, 64)
	for _, workers := range []int{1, runtime.NumCPU()} {
		v := New(e, workers)
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				v.Verify(jobs)
			}
		})
	}
}
