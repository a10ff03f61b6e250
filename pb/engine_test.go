package pb

import (
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestEncoding(t *testing.T) {
	in := &BestMoveRequest{
		Size:      15,
		First:     "black",
		Moves:     []string{"h8", "i9"},
		Depth:     3,
		Algorithm: "alphabeta",
	}
	bs, err := proto.Marshal(in)
	require.NoError(t, err)

	var out BestMoveRequest
	require.NoError(t, proto.Unmarshal(bs, &out))
	assert.Equal(t, in, &out)
}

func TestNegativeScore(t *testing.T) {
	in := &BestMoveResponse{Move: "h8", Found: true, Score: -1, Visited: 1234}
	bs, err := proto.Marshal(in)
	require.NoError(t, err)

	var out BestMoveResponse
	require.NoError(t, proto.Unmarshal(bs, &out))
	assert.Equal(t, int32(-1), out.Score)
	assert.Equal(t, int64(1234), out.Visited)
	assert.Contains(t, out.String(), `move:"h8"`)
}
