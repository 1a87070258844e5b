// Copyright 2025 Sonic Labs
// This file is part of the Sonic probability library
//
// The probability library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The probability library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the probability library. If not, see <http://www.gnu.org/licenses/>.

package rng

import (
	"math/rand"
	"sync"
	"time"

	"github.com/0xsoniclabs/probability/config"
	"github.com/0xsoniclabs/probability/logger"
)

// Source supplies uniform variates in the range [0,1). A *rand.Rand
// satisfies it. Sources are not required to be safe for concurrent use;
// see Locked.
//
//go:generate mockgen -source source.go -destination source_mock.go -package rng
type Source interface {
	Float64() float64
}

var (
	defaultOnce   sync.Once
	defaultSource *Locked
)

// New returns a deterministic source for the given seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Default returns the process-wide source shared by all distributions
// constructed without an explicit one. It is created on first use from
// the environment configuration and is safe for concurrent use.
func Default() Source {
	defaultOnce.Do(func() {
		cfg, err := config.FromEnv()
		if err != nil {
			cfg = config.Default()
		}
		log := logger.NewLogger(cfg.LogLevel, "Rng")
		if err != nil {
			log.Warningf("cannot load configuration, using defaults; %v", err)
		}
		seed := cfg.Seed
		if seed == config.DefaultSeed {
			seed = time.Now().UnixNano()
		}
		log.Infof("Seed default random source with %d", seed)
		defaultSource = NewLocked(New(seed))
	})
	return defaultSource
}

// Positive draws from src until the variate is strictly positive, so the
// result lies in (0,1).
func Positive(src Source) float64 {
	for {
		if u := src.Float64(); u > 0 {
			return u
		}
	}
}
