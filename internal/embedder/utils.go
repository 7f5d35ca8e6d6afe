package embedder

import "math"

const (
	defaultBaseURL    = "https://api.together.xyz/v1"
	defaultModel      = "BAAI/bge-large-en-v1.5"
	defaultDimensions = 1024
	defaultBatchSize  = 32
)

// normalizes a vector to unit length in place
func l2normalize(v []float32) {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}

	if sum == 0 {
		return
	}

	inv := float32(1.0 / math.Sqrt(sum))
	for i := range v {
		v[i] *= inv
	}
}
