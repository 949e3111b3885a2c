package fixbits

// wordBits is the number of bits per storage word.
const wordBits = 32

// Seed and multiplier for the running hash combination over words.
const (
	hashSeed  = 17
	hashPrime = 31
)
