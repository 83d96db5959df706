package main

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// serviceName is the fully qualified gRPC service name
const serviceName = "squadron.v1.SquadronSolver"

// SquadronSolverServer is the server API for the SquadronSolver service.
// Requests and responses are google.protobuf.Struct messages holding the
// JSON shapes of converter.SolveRequest and converter.SolveResponse.
type SquadronSolverServer interface {
	Solve(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterSquadronSolverServer registers srv on s
func RegisterSquadronSolverServer(s grpc.ServiceRegistrar, srv SquadronSolverServer) {
	s.RegisterService(&squadronSolverServiceDesc, srv)
}

func solveHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SquadronSolverServer).Solve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + serviceName + "/Solve",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SquadronSolverServer).Solve(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var squadronSolverServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*SquadronSolverServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Solve",
			Handler:    solveHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "squadron/v1/solver.proto",
}

// squadronSolverClient calls the SquadronSolver service
type squadronSolverClient struct {
	cc grpc.ClientConnInterface
}

func newSquadronSolverClient(cc grpc.ClientConnInterface) *squadronSolverClient {
	return &squadronSolverClient{cc: cc}
}

func (c *squadronSolverClient) Solve(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Solve", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
