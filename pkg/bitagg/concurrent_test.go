package bitagg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

// Test_scalarCombineFoldsConcurrentPartitions mirrors how a caller
// scans a table in parallel: each goroutine builds its own partition
// state from a disjoint row range, then the partition states are
// folded into one coordinator state with Combine. The result must
// match a single-threaded scan over the same rows in any order, since
// AND/OR/XOR are all commutative and associative.
func Test_scalarCombineFoldsConcurrentPartitions(t *testing.T) {
	const partitions = 8
	const rowsPerPartition = 500

	rows := make([][]uint32, partitions)
	for p := 0; p < partitions; p++ {
		part := make([]uint32, rowsPerPartition)
		for i := range part {
			part[i] = uint32(p*rowsPerPartition + i)
		}
		rows[p] = part
	}

	op := XorOp[uint32]{}
	partitionStates := make([]ScalarState[uint32], partitions)

	var g errgroup.Group
	for p := 0; p < partitions; p++ {
		p := p
		g.Go(func() error {
			partitionStates[p].Initialize()
			for _, v := range rows[p] {
				Update(&partitionStates[p], op, v)
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())

	var coordinator ScalarState[uint32]
	coordinator.Initialize()
	for p := 0; p < partitions; p++ {
		Combine(&partitionStates[p], &coordinator, op)
	}
	got, ok := Finalize(&coordinator)
	assert.True(t, ok)

	var sequential ScalarState[uint32]
	sequential.Initialize()
	for p := 0; p < partitions; p++ {
		for _, v := range rows[p] {
			Update(&sequential, op, v)
		}
	}
	want, ok := Finalize(&sequential)
	assert.True(t, ok)

	assert.Equal(t, want, got)
}

// Test_scalarCombineWithEmptyPartitionStaysUnset checks the IsSet
// short-circuit in Combine: a partition that saw zero rows must not
// flip the coordinator's IsSet on, or a group with no matching rows
// would wrongly finalize to a value instead of NULL.
func Test_scalarCombineWithEmptyPartitionStaysUnset(t *testing.T) {
	var empty, coordinator ScalarState[int64]
	empty.Initialize()
	coordinator.Initialize()

	op := AndOp[int64]{}
	Combine(&empty, &coordinator, op)

	_, ok := Finalize(&coordinator)
	assert.False(t, ok)
}
