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
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviszhen/hllbit/pkg/util"
)

var _ util.Serialize = new(bufSerialize)
var _ util.Deserialize = new(bufSerialize)

type bufSerialize struct {
	data *bytes.Buffer
}

func (s *bufSerialize) WriteData(buffer []byte, n int) error {
	s.data.Write(buffer[:n])
	return nil
}

func (s *bufSerialize) ReadData(buffer []byte, n int) error {
	_, err := io.ReadFull(s.data, buffer[:n])
	if err != nil && errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *bufSerialize) Close() error { return nil }

func TestV2RoundTripIsIdentity(t *testing.T) {
	h := New()
	for i := uint64(0); i < 2000; i++ {
		h.InsertElement(hashUint64(i))
	}

	buf := &bufSerialize{data: &bytes.Buffer{}}
	require.NoError(t, NewSerializer(3).Serialize(h, buf))

	got, err := Deserialize(buf)
	require.NoError(t, err)
	assert.Equal(t, h.k, got.k)
}

func TestV1SerializeRoundTripWithinBound(t *testing.T) {
	h := New()
	for i := uint64(0); i < 5000; i++ {
		h.InsertElement(hashUint64(i))
	}
	origCount := h.Count()

	buf := &bufSerialize{data: &bytes.Buffer{}}
	require.NoError(t, NewSerializer(2).Serialize(h, buf))

	got, err := Deserialize(buf)
	require.NoError(t, err)
	ratio := float64(got.Count()) / float64(origCount)
	assert.GreaterOrEqual(t, ratio, 0.5)
	assert.LessOrEqual(t, ratio, 2.0)
}

func TestShouldSerializeGate(t *testing.T) {
	assert.False(t, NewSerializer(1).ShouldSerialize())
	assert.False(t, NewSerializer(2).ShouldSerialize())
	assert.True(t, NewSerializer(3).ShouldSerialize())
	assert.True(t, NewSerializer(4).ShouldSerialize())
}

func TestDeserializeUnknownTagIsFormatError(t *testing.T) {
	buf := &bufSerialize{data: &bytes.Buffer{}}
	require.NoError(t, util.Write(storageType(9), buf))

	_, err := Deserialize(buf)
	require.Error(t, err)
}
