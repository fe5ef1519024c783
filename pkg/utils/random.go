package utils

import (
	"crypto/rand"
	"encoding/hex"
	"hash/fnv"

	"ancestor-server/pkg/rng"
)

// GenerateID создает простой уникальный ID (замена UUID для снижения зависимостей)
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// DeterministicID создает ID из сидированного источника. В отличие от
// GenerateID воспроизводится от запуска к запуску при одном сиде.
func DeterministicID(r *rng.Service, prefix string) string {
	b := make([]byte, 8)
	v := r.Uint64()
	for i := range b {
		b[i] = byte(v >> (8 * i))
	}
	return prefix + hex.EncodeToString(b)
}

// StringToSeed детерминированно превращает строку (имя игрока) в сид.
// Один и тот же токен всегда дает один и тот же мир.
func StringToSeed(s string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return int64(h.Sum64())
}
