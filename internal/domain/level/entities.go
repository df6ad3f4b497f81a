package level

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"siged/internal/domain/domainerr"
)

var (
	ErrNotFound      = domainerr.NotFound("level_not_found", "level not found")
	ErrNegativePrice = domainerr.Validation("invalid_price", "price", "price per photo must be a non-negative number")
)

// Level is pre-seeded and only ever mutated by price updates.
type Level struct {
	Level         int     `json:"level"`
	PricePerPhoto float64 `json:"price_per_photo"`
}

func ValidatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// ParseSeed reads "level:price" pairs separated by commas, e.g. "1:10,2:15".
func ParseSeed(raw string) ([]Level, error) {
	var out []Level
	seen := map[int]bool{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("level seed %q: want level:price", part)
		}
		n, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			return nil, fmt.Errorf("level seed %q: %w", part, err)
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("level seed %q: %w", part, err)
		}
		if err := ValidatePrice(p); err != nil {
			return nil, fmt.Errorf("level seed %q: %w", part, err)
		}
		if seen[n] {
			return nil, fmt.Errorf("level seed: duplicate level %d", n)
		}
		seen[n] = true
		out = append(out, Level{Level: n, PricePerPhoto: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	return out, nil
}
