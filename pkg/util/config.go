// Copyright 2023-2024 daviszhen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import "github.com/BurntSushi/toml"

// HLLOptions is informational only: hll.Bits/hll.M/hll.Q are
// compile-time constants that every peer exchanging V2 blobs must
// already agree on, so hllctl echoes the configured value next to the
// sketch's real one rather than using it to size anything.
type HLLOptions struct {
	Bits int    `toml:"bits"`
	Seed uint64 `toml:"seed"`
}

// BitstringAggOptions gives bitstring_agg a fallback (min, max) pair for
// callers that don't want to depend on column statistics.
type BitstringAggOptions struct {
	DefaultMin int64 `toml:"default_min"`
	DefaultMax int64 `toml:"default_max"`
}

type DebugOptions struct {
	LogLevel    string `toml:"log_level"`
	PrintResult bool   `toml:"print_result"`
}

type Config struct {
	HLL          HLLOptions           `toml:"hll"`
	BitstringAgg BitstringAggOptions  `toml:"bitstring_agg"`
	Debug        DebugOptions         `toml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		HLL: HLLOptions{
			Bits: 14,
			Seed: 0,
		},
		BitstringAgg: BitstringAggOptions{
			DefaultMin: 0,
			DefaultMax: 0,
		},
		Debug: DebugOptions{
			LogLevel:    "info",
			PrintResult: true,
		},
	}
}

// LoadConfig decodes an hllctl.toml file, falling back to defaults for
// any field the file omits.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" || !FileIsValid(path) {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, err
	}
	return cfg, nil
}
