package rng

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
)

// Source is an explicit random source. Every draw in the simulator goes
// through one of these; nothing reads a package-level generator.
type Source interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// ByteGenerator streams HMAC-SHA256 bytes keyed by the server seed over
// "client:nonce:round" messages, one 32 byte round at a time.
type ByteGenerator struct {
	serverSeed   string
	clientSeed   string
	nonce        uint64
	currentRound uint64
	currentPos   int
	buffer       [32]byte
}

// NewByteGenerator creates a byte generator positioned at cursor.
func NewByteGenerator(serverSeed, clientSeed string, nonce uint64, cursor uint64) *ByteGenerator {
	bg := &ByteGenerator{
		serverSeed:   serverSeed,
		clientSeed:   clientSeed,
		nonce:        nonce,
		currentRound: cursor / 32,
		currentPos:   int(cursor % 32),
	}
	bg.generateRound()
	return bg
}

// Next returns the next byte from the generator
func (bg *ByteGenerator) Next() byte {
	if bg.currentPos >= 32 {
		bg.currentRound++
		bg.currentPos = 0
		bg.generateRound()
	}

	b := bg.buffer[bg.currentPos]
	bg.currentPos++
	return b
}

// NextFloat generates the next float in [0, 1) using exactly 4 bytes
func (bg *ByteGenerator) NextFloat() float64 {
	b0 := bg.Next()
	b1 := bg.Next()
	b2 := bg.Next()
	b3 := bg.Next()

	return bytesToFloat([4]byte{b0, b1, b2, b3})
}

func (bg *ByteGenerator) generateRound() {
	h := hmac.New(sha256.New, []byte(bg.serverSeed))
	message := fmt.Sprintf("%s:%d:%d", bg.clientSeed, bg.nonce, bg.currentRound)
	h.Write([]byte(message))
	copy(bg.buffer[:], h.Sum(nil))
}

func bytesToFloat(bytes [4]byte) float64 {
	result := 0.0
	for i, b := range bytes {
		divider := math.Pow(256, float64(i+1))
		result += float64(b) / divider
	}
	return result
}

// HMACSource adapts a ByteGenerator to Source. Each Intn call consumes one
// float and maps it with floor(f * n).
type HMACSource struct {
	gen *ByteGenerator
}

// NewHMACSource creates a source over the given seed pair.
func NewHMACSource(serverSeed, clientSeed string) *HMACSource {
	return &HMACSource{gen: NewByteGenerator(serverSeed, clientSeed, 0, 0)}
}

// NewSeededSource creates a reproducible source from an integer seed. The
// stream label separates sources that share a seed (e.g. "wheel").
func NewSeededSource(seed int64, stream string) *HMACSource {
	return NewHMACSource(strconv.FormatInt(seed, 10), stream)
}

// NewEntropySource creates a source keyed by 32 bytes from crypto/rand.
func NewEntropySource(stream string) *HMACSource {
	var key [32]byte
	if _, err := rand.Read(key[:]); err != nil {
		panic(fmt.Sprintf("rng: read entropy: %v", err))
	}
	return NewHMACSource(hex.EncodeToString(key[:]), stream)
}

// Float64 returns the next float in [0, 1).
func (s *HMACSource) Float64() float64 {
	return s.gen.NextFloat()
}

// Intn returns floor(f * n) for the next float f, clamped to n-1.
func (s *HMACSource) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("rng: Intn called with n=%d", n))
	}
	idx := int(math.Floor(s.gen.NextFloat() * float64(n)))
	if idx >= n {
		idx = n - 1
	}
	return idx
}
