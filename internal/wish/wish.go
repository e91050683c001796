// Package wish подбирает приветствие по времени суток.
package wish

import "time"

// Offset — сдвиг в часах относительно UTC, по которому считается время суток.
const Offset = 4

const (
	Morning   = "Good Morning. "
	Afternoon = "Good Afternoon. "
	Evening   = "Good Evening. "
)

// For возвращает приветствие для момента t.
func For(t time.Time) string {
	// Hour() лежит в 0..23, сдвиг положительный: остатка от деления достаточно
	hours := (t.UTC().Hour() + Offset) % 24

	switch {
	case hours < 12:
		return Morning
	case hours < 18:
		return Afternoon
	default:
		return Evening
	}
}

func Now() string {
	return For(time.Now())
}
