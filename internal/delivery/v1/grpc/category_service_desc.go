package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	CategoryServiceName      = "catalog.v1.CategoryService"
	GetCategoryFullMethod    = "/" + CategoryServiceName + "/GetCategory"
	ListCategoriesFullMethod = "/" + CategoryServiceName + "/ListCategories"
)

// CategoryServiceServer — контракт catalog.v1.CategoryService. Сообщения — well-known types,
// поэтому сервис описан вручную, без сгенерированных стабов.
type CategoryServiceServer interface {
	// GetCategory принимает ID категории.
	GetCategory(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error)
	// ListCategories принимает page, per_page, search, sort, dir.
	ListCategories(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

var CategoryServiceDesc = grpc.ServiceDesc{
	ServiceName: CategoryServiceName,
	HandlerType: (*CategoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetCategory",
			Handler:    getCategoryHandler,
		},
		{
			MethodName: "ListCategories",
			Handler:    listCategoriesHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/category_service.proto",
}

func RegisterCategoryServiceServer(s grpc.ServiceRegistrar, srv CategoryServiceServer) {
	s.RegisterService(&CategoryServiceDesc, srv)
}

func getCategoryHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(CategoryServiceServer).GetCategory(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetCategoryFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CategoryServiceServer).GetCategory(ctx, req.(*wrapperspb.StringValue))
	}

	return interceptor(ctx, in, info, handler)
}

func listCategoriesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(CategoryServiceServer).ListCategories(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListCategoriesFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CategoryServiceServer).ListCategories(ctx, req.(*structpb.Struct))
	}

	return interceptor(ctx, in, info, handler)
}
