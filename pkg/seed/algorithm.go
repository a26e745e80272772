package seed

import (
	"crypto/md5"  //nolint:gosec
	"crypto/sha1" //nolint:gosec
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/segmentio/fasthash/fnv1a"
)

// Algorithm names a digest used to derive seeds.
type Algorithm string

const (
	SHA256 Algorithm = "sha256"
	SHA1   Algorithm = "sha1"
	MD5    Algorithm = "md5"
	SHA512 Algorithm = "sha512"
	XXHash Algorithm = "xxhash"
	FNV1a  Algorithm = "fnv1a"

	DefaultAlgorithm = SHA256
)

var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

type digestFunc func(key string) []byte

var digests = map[Algorithm]digestFunc{
	SHA256: func(key string) []byte {
		sum := sha256.Sum256([]byte(key))
		return sum[:]
	},
	SHA1: func(key string) []byte {
		sum := sha1.Sum([]byte(key)) //nolint:gosec
		return sum[:]
	},
	MD5: func(key string) []byte {
		sum := md5.Sum([]byte(key)) //nolint:gosec
		return sum[:]
	},
	SHA512: func(key string) []byte {
		sum := sha512.Sum512([]byte(key))
		return sum[:]
	},
	XXHash: func(key string) []byte {
		return binary.BigEndian.AppendUint64(nil, xxhash.Sum64String(key))
	},
	FNV1a: func(key string) []byte {
		return binary.BigEndian.AppendUint64(nil, fnv1a.HashString64(key))
	},
}

// ParseAlgorithm returns the Algorithm named by s.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(s)
	if _, ok := digests[a]; !ok {
		return "", fmt.Errorf("%w: %q (supported: %v)", ErrUnknownAlgorithm, s, Algorithms())
	}
	return a, nil
}

// Cryptographic reports whether the algorithm is a cryptographic digest.
func (a Algorithm) Cryptographic() bool {
	switch a {
	case XXHash, FNV1a:
		return false
	}
	return true
}

func (a Algorithm) String() string {
	return string(a)
}

// Algorithms lists every supported algorithm, sorted by name.
func Algorithms() []Algorithm {
	out := make([]Algorithm, 0, len(digests))
	for a := range digests {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
