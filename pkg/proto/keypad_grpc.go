// Package proto defines the calculator.Keypad gRPC service. Messages are
// protobuf well-known types, so the service needs no generated message code.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	Keypad_Press_FullMethodName        = "/calculator.Keypad/Press"
	Keypad_Replay_FullMethodName       = "/calculator.Keypad/Replay"
	Keypad_History_FullMethodName      = "/calculator.Keypad/History"
	Keypad_ClearHistory_FullMethodName = "/calculator.Keypad/ClearHistory"
)

// KeypadClient is the client API for the calculator.Keypad service.
type KeypadClient interface {
	// Press sends one key and returns the display.
	Press(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	// Replay loads the result of a history entry, 0 being the newest.
	Replay(ctx context.Context, in *wrapperspb.Int32Value, opts ...grpc.CallOption) (*structpb.Struct, error)
	History(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	ClearHistory(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type keypadClient struct {
	cc grpc.ClientConnInterface
}

func NewKeypadClient(cc grpc.ClientConnInterface) KeypadClient {
	return &keypadClient{cc}
}

func (c *keypadClient) Press(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, Keypad_Press_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *keypadClient) Replay(ctx context.Context, in *wrapperspb.Int32Value, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, Keypad_Replay_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *keypadClient) History(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, Keypad_History_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *keypadClient) ClearHistory(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, Keypad_ClearHistory_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// KeypadServer is the server API for the calculator.Keypad service.
type KeypadServer interface {
	Press(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	Replay(context.Context, *wrapperspb.Int32Value) (*structpb.Struct, error)
	History(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	ClearHistory(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
}

// UnimplementedKeypadServer can be embedded to have forward compatible implementations.
type UnimplementedKeypadServer struct{}

func (UnimplementedKeypadServer) Press(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Press not implemented")
}
func (UnimplementedKeypadServer) Replay(context.Context, *wrapperspb.Int32Value) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Replay not implemented")
}
func (UnimplementedKeypadServer) History(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method History not implemented")
}
func (UnimplementedKeypadServer) ClearHistory(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClearHistory not implemented")
}

func RegisterKeypadServer(s grpc.ServiceRegistrar, srv KeypadServer) {
	s.RegisterService(&Keypad_ServiceDesc, srv)
}

func _Keypad_Press_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KeypadServer).Press(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Keypad_Press_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KeypadServer).Press(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Keypad_Replay_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.Int32Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KeypadServer).Replay(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Keypad_Replay_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KeypadServer).Replay(ctx, req.(*wrapperspb.Int32Value))
	}
	return interceptor(ctx, in, info, handler)
}

func _Keypad_History_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KeypadServer).History(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Keypad_History_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KeypadServer).History(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Keypad_ClearHistory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KeypadServer).ClearHistory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Keypad_ClearHistory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KeypadServer).ClearHistory(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// Keypad_ServiceDesc is the grpc.ServiceDesc for the calculator.Keypad service.
var Keypad_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "calculator.Keypad",
	HandlerType: (*KeypadServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Press",
			Handler:    _Keypad_Press_Handler,
		},
		{
			MethodName: "Replay",
			Handler:    _Keypad_Replay_Handler,
		},
		{
			MethodName: "History",
			Handler:    _Keypad_History_Handler,
		},
		{
			MethodName: "ClearHistory",
			Handler:    _Keypad_ClearHistory_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "calculator/keypad",
}
