// Package jitter рассчитывает интервалы ожидания между повторами с долей случайности,
// чтобы несколько экземпляров сервиса не повторяли запросы синхронно.
package jitter

import (
	"math/rand/v2"
	"time"
)

// DefaultJitter — стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

// Duration возвращает d, увеличенную на случайную долю. Результат в диапазоне [d, d*(1+jitterFactor)).
func Duration(d time.Duration, jitterFactor float64) time.Duration {
	return withRand(d, jitterFactor, rand.Float64)
}

// ExponentialBackoff удваивает base за каждую попытку (нумерация с нуля), не превышая max,
// и добавляет джиттер.
func ExponentialBackoff(base, max time.Duration, attempt int, jitterFactor float64) time.Duration {
	return Duration(backoff(base, max, attempt), jitterFactor)
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base
	for i := 0; i < attempt; i++ {
		if d >= max/2 {
			return max
		}
		d *= 2
	}

	if d > max {
		return max
	}

	return d
}

func withRand(d time.Duration, jitterFactor float64, float func() float64) time.Duration {
	if d <= 0 || jitterFactor <= 0 {
		return d
	}

	return d + time.Duration(float()*jitterFactor*float64(d))
}
