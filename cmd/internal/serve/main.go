package serve

import (
	"context"
	"flag"
	"fmt"
	"net"

	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nelhage/gomoku/ai"
	"github.com/nelhage/gomoku/cmd/internal/opt"
	"github.com/nelhage/gomoku/gomoku"
	"github.com/nelhage/gomoku/notation"
	"github.com/nelhage/gomoku/pb"
)

type Command struct {
	port int
	opt  opt.Search
}

func (*Command) Name() string     { return "serve" }
func (*Command) Synopsis() string { return "Serve best-move RPCs via GRPC" }
func (*Command) Usage() string {
	return `serve [flags]

Serve the gomoku.Engine GRPC service. Requests that leave depth or
algorithm unset use the search flags given here.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.port, "port", 55431, "bind port")
	c.opt.AddFlags(flags)
}

type server struct {
	defaults ai.SearchConfig
}

func (s *server) BestMove(ctx context.Context, req *pb.BestMoveRequest) (*pb.BestMoveResponse, error) {
	g, err := s.position(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	cfg := s.defaults
	if req.Depth != 0 {
		cfg.Depth = int(req.Depth)
	}
	if req.Algorithm != "" {
		alg, err := ai.ParseAlgorithm(req.Algorithm)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		cfg.Algorithm = alg
	}

	a, err := ai.NewSearch(cfg).Analyze(ctx, g)
	if err != nil {
		return nil, status.Error(codes.Canceled, err.Error())
	}
	resp := &pb.BestMoveResponse{
		Found:   a.Found,
		Score:   int32(a.Score),
		Visited: int64(a.Stats.Visited),
	}
	if a.Found {
		resp.Move = notation.FormatMove(a.Move)
	}
	log.WithFields(log.Fields{
		"moves":   len(req.Moves),
		"move":    resp.Move,
		"score":   resp.Score,
		"visited": resp.Visited,
	}).Debug("best move")
	return resp, nil
}

func (s *server) position(req *pb.BestMoveRequest) (*gomoku.Game, error) {
	cfg := gomoku.Config{Size: int(req.Size)}
	if req.First != "" {
		first, err := gomoku.ParseColor(req.First)
		if err != nil {
			return nil, err
		}
		cfg.First = first
	}
	if cfg.Size < 0 || cfg.Size > notation.MaxSize {
		return nil, fmt.Errorf("bad size: %d", cfg.Size)
	}
	var sqs []gomoku.Square
	for _, m := range req.Moves {
		sq, err := notation.ParseSquare(m)
		if err != nil {
			return nil, err
		}
		sqs = append(sqs, sq)
	}
	return gomoku.Replay(cfg, sqs)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.opt.Resolve(); err != nil {
		log.Errorf("serve: %v", err)
		return subcommands.ExitUsageError
	}
	log.Printf("Listening on port %d", c.port)
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", c.port))
	if err != nil {
		log.Errorf("failed to listen: %v", err)
		return subcommands.ExitFailure
	}
	grpcServer := grpc.NewServer()
	pb.RegisterEngineServer(grpcServer, &server{defaults: c.opt.BuildConfig(0)})

	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()
	if err := grpcServer.Serve(lis); err != nil {
		log.Errorf("serve: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
