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

package hll

import "github.com/spaolacci/murmur3"

// Hash turns raw input bytes into the 64-bit hash InsertElement/Update
// expect. InsertElement itself never calls this: it takes an
// already-hashed value, so callers are free to hash however they
// like. Hash is only a convenience for callers (the CLI, tests) that
// start from raw payloads rather than pre-hashed values.
func Hash(data []byte) uint64 {
	return murmur3.Sum64(data)
}
