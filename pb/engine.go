// Package pb holds the wire types and service plumbing for the
// gomoku.Engine RPC service described in gomoku.proto.
package pb

import (
	"context"

	"github.com/golang/protobuf/proto"
	"google.golang.org/grpc"
)

type BestMoveRequest struct {
	Size      int32    `protobuf:"varint,1,opt,name=size,proto3" json:"size,omitempty"`
	First     string   `protobuf:"bytes,2,opt,name=first,proto3" json:"first,omitempty"`
	Moves     []string `protobuf:"bytes,3,rep,name=moves,proto3" json:"moves,omitempty"`
	Depth     int32    `protobuf:"varint,4,opt,name=depth,proto3" json:"depth,omitempty"`
	Algorithm string   `protobuf:"bytes,5,opt,name=algorithm,proto3" json:"algorithm,omitempty"`
}

func (m *BestMoveRequest) Reset()         { *m = BestMoveRequest{} }
func (m *BestMoveRequest) String() string { return proto.CompactTextString(m) }
func (*BestMoveRequest) ProtoMessage()    {}

type BestMoveResponse struct {
	Move    string `protobuf:"bytes,1,opt,name=move,proto3" json:"move,omitempty"`
	Found   bool   `protobuf:"varint,2,opt,name=found,proto3" json:"found,omitempty"`
	Score   int32  `protobuf:"varint,3,opt,name=score,proto3" json:"score,omitempty"`
	Visited int64  `protobuf:"varint,4,opt,name=visited,proto3" json:"visited,omitempty"`
}

func (m *BestMoveResponse) Reset()         { *m = BestMoveResponse{} }
func (m *BestMoveResponse) String() string { return proto.CompactTextString(m) }
func (*BestMoveResponse) ProtoMessage()    {}

func init() {
	proto.RegisterType((*BestMoveRequest)(nil), "gomoku.BestMoveRequest")
	proto.RegisterType((*BestMoveResponse)(nil), "gomoku.BestMoveResponse")
}

const bestMoveMethod = "/gomoku.Engine/BestMove"

type EngineClient interface {
	BestMove(ctx context.Context, in *BestMoveRequest, opts ...grpc.CallOption) (*BestMoveResponse, error)
}

type engineClient struct {
	cc *grpc.ClientConn
}

func NewEngineClient(cc *grpc.ClientConn) EngineClient {
	return &engineClient{cc}
}

func (c *engineClient) BestMove(ctx context.Context, in *BestMoveRequest, opts ...grpc.CallOption) (*BestMoveResponse, error) {
	out := new(BestMoveResponse)
	if err := c.cc.Invoke(ctx, bestMoveMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type EngineServer interface {
	BestMove(context.Context, *BestMoveRequest) (*BestMoveResponse, error)
}

func RegisterEngineServer(s *grpc.Server, srv EngineServer) {
	s.RegisterService(&engineServiceDesc, srv)
}

func engineBestMoveHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BestMoveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServer).BestMove(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: bestMoveMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EngineServer).BestMove(ctx, req.(*BestMoveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var engineServiceDesc = grpc.ServiceDesc{
	ServiceName: "gomoku.Engine",
	HandlerType: (*EngineServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "BestMove",
			Handler:    engineBestMoveHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gomoku.proto",
}
