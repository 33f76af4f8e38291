// Package catalogueservice exposes books through the book.Catalogue gRPC service.
//
// Messages are protobuf well known types, so neither side needs generated code:
// GetBook takes an Int64Value id and answers with a Struct, ListBooks takes an
// Empty and answers with a ListValue of Structs.
package catalogueservice

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	serviceName     = "book.Catalogue"
	getBookMethod   = "/book.Catalogue/GetBook"
	listBooksMethod = "/book.Catalogue/ListBooks"
)

// CatalogueServer is the server side of the book.Catalogue service
type CatalogueServer interface {
	GetBook(ctx context.Context, id *wrapperspb.Int64Value) (*structpb.Struct, error)
	ListBooks(ctx context.Context, empty *emptypb.Empty) (*structpb.ListValue, error)
}

// Register adds srv to registrar as the book.Catalogue service
func Register(registrar grpc.ServiceRegistrar, srv CatalogueServer) {
	registrar.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*CatalogueServer)(nil),
		Methods: []grpc.MethodDesc{
			{MethodName: "GetBook", Handler: getBookHandler},
			{MethodName: "ListBooks", Handler: listBooksHandler},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "book/catalogue.proto",
	}, srv)
}

func getBookHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogueServer).GetBook(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: getBookMethod}
	return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogueServer).GetBook(ctx, req.(*wrapperspb.Int64Value))
	})
}

func listBooksHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogueServer).ListBooks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: listBooksMethod}
	return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogueServer).ListBooks(ctx, req.(*emptypb.Empty))
	})
}
