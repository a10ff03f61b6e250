package serve

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/nelhage/gomoku/ai"
	"github.com/nelhage/gomoku/pb"
)

var defaults = ai.SearchConfig{Algorithm: ai.AlphaBeta, Depth: 1}

func TestBestMoveTakesWin(t *testing.T) {
	s := &server{defaults: defaults}
	resp, err := s.BestMove(context.Background(), &pb.BestMoveRequest{
		Moves: []string{"d4", "c3", "e5", "o1", "f6", "a15", "g7", "o15"},
	})
	require.NoError(t, err)
	assert.True(t, resp.Found)
	assert.Equal(t, "h8", resp.Move)
	assert.Equal(t, int32(1), resp.Score)
	assert.True(t, resp.Visited > 0)
}

func TestBestMoveRequestOverrides(t *testing.T) {
	s := &server{defaults: defaults}
	resp, err := s.BestMove(context.Background(), &pb.BestMoveRequest{
		Size:      9,
		First:     "white",
		Moves:     []string{"e5"},
		Depth:     2,
		Algorithm: "minimax",
	})
	require.NoError(t, err)
	assert.True(t, resp.Found)
	assert.Equal(t, int32(0), resp.Score)
}

func TestBestMoveGameOver(t *testing.T) {
	s := &server{defaults: defaults}
	resp, err := s.BestMove(context.Background(), &pb.BestMoveRequest{
		Moves: []string{"a1", "a2", "b1", "b2", "c1", "c2", "d1", "d2", "e1"},
	})
	require.NoError(t, err)
	assert.False(t, resp.Found)
	assert.Equal(t, "", resp.Move)
}

func TestBestMoveInvalid(t *testing.T) {
	s := &server{defaults: defaults}
	for _, req := range []*pb.BestMoveRequest{
		{Moves: []string{"zz"}},
		{Moves: []string{"h8", "h8"}},
		{First: "red"},
		{Size: 30},
		{Algorithm: "mcts"},
	} {
		_, err := s.BestMove(context.Background(), req)
		assert.Equal(t, codes.InvalidArgument, status.Code(err), "%v", req)
	}
}

func TestOverGRPC(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	pb.RegisterEngineServer(srv, &server{defaults: defaults})
	go srv.Serve(lis)
	defer srv.Stop()

	conn, err := grpc.Dial("bufnet",
		grpc.WithDialer(func(string, time.Duration) (net.Conn, error) { return lis.Dial() }),
		grpc.WithInsecure())
	require.NoError(t, err)
	defer conn.Close()

	resp, err := pb.NewEngineClient(conn).BestMove(context.Background(), &pb.BestMoveRequest{
		Moves: []string{"d4", "c3", "e5", "o1", "f6", "a15", "g7", "o15"},
	})
	require.NoError(t, err)
	assert.Equal(t, "h8", resp.Move)
	assert.Equal(t, int32(1), resp.Score)
}
