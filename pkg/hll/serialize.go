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

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/daviszhen/hllbit/pkg/util"
)

// storageType is the wire tag for field 100, "type" in the format
// table: which of the two on-disk representations "data" holds.
type storageType uint8

const (
	storageV1 storageType = 1
	storageV2 storageType = 2
)

// Serializer gates on a target format version the way the source's
// Serialize checks serializer.ShouldSerialize(3): callers writing an
// older format get the legacy V1 image, everyone else gets the raw
// V2 register array.
type Serializer struct {
	formatVersion int
}

// NewSerializer builds a Serializer targeting the given wire format
// version.
func NewSerializer(formatVersion int) *Serializer {
	return &Serializer{formatVersion: formatVersion}
}

// ShouldSerialize reports whether the target format is new enough to
// carry the compact V2 register array directly.
func (s *Serializer) ShouldSerialize() bool {
	return s.formatVersion >= 3
}

// Serialize writes the sketch as tagged fields 100 ("type") and 101
// ("data"), choosing V2's raw registers or a freshly-upscaled V1
// image depending on ShouldSerialize.
func (s *Serializer) Serialize(h *Sketch, out util.Serialize) error {
	if s.ShouldSerialize() {
		if err := util.Write(storageV2, out); err != nil {
			return err
		}
		return out.WriteData(h.k[:], len(h.k))
	}
	data := ToV1(h)
	if err := util.Write(storageV1, out); err != nil {
		return err
	}
	return out.WriteData(data, len(data))
}

// Deserialize reads the tagged fields written by Serialize. A V1
// payload is downscaled into a fresh sketch; an unknown tag means the
// blob was written by a newer or foreign format and is rejected
// outright rather than guessed at.
func Deserialize(in util.Deserialize) (*Sketch, error) {
	var tag storageType
	if err := util.Read(&tag, in); err != nil {
		return nil, err
	}
	switch tag {
	case storageV1:
		buf := make([]byte, GetV1Size())
		if err := in.ReadData(buf, len(buf)); err != nil {
			return nil, err
		}
		return FromV1(buf), nil
	case storageV2:
		result := New()
		if err := in.ReadData(result.k[:], len(result.k)); err != nil {
			return nil, err
		}
		return result, nil
	default:
		util.Error("unknown HyperLogLog storage type", zap.Uint8("storageType", uint8(tag)))
		return nil, fmt.Errorf("hll: unknown HyperLogLog storage type %d", tag)
	}
}
