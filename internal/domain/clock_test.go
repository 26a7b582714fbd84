package domain

import (
	"testing"
	"time"
)

// setClock подменяет Now на управляемые часы и возвращает функцию для сдвига времени.
func setClock(t *testing.T, start time.Time) func(time.Duration) {
	t.Helper()

	current := start
	prev := Now
	Now = func() time.Time { return current }
	t.Cleanup(func() { Now = prev })

	return func(d time.Duration) {
		current = current.Add(d)
	}
}

func strPtr(s string) *string {
	return &s
}
