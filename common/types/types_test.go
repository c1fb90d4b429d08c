package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShardID_String(t *testing.T) {
	require.Equal(t, "[logs][3]", ShardID{Index: "logs", Shard: 3}.String())
}

func TestNodeID(t *testing.T) {
	id := BytesToNodeID([]byte{0xab, 0xcd})
	require.Equal(t, "abcd", id.String()[:4])
	require.Equal(t, "abcd0", id.ShortString())
	require.Len(t, id.Bytes(), NodeIDSize)

	require.NotEqual(t, RandomNodeID(), RandomNodeID())
	require.Equal(t, EmptyNodeID, NodeID{})
}
