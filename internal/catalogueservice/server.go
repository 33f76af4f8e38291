package catalogueservice

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/svera/booktable/internal/book"
)

// Catalogue provides the books served by the service
type Catalogue interface {
	Book(ctx context.Context, id int64) (book.Book, bool, error)
	Books(ctx context.Context) ([]book.Book, error)
}

// Server implements CatalogueServer on top of a Catalogue
type Server struct {
	catalogue Catalogue
}

func NewServer(catalogue Catalogue) *Server {
	return &Server{catalogue: catalogue}
}

// GetBook answers NotFound for unknown ids
func (s *Server) GetBook(ctx context.Context, id *wrapperspb.Int64Value) (*structpb.Struct, error) {
	b, ok, err := s.catalogue.Book(ctx, id.GetValue())
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !ok {
		return nil, status.Errorf(codes.NotFound, "book %d not found", id.GetValue())
	}
	return encodeBook(b), nil
}

func (s *Server) ListBooks(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	books, err := s.catalogue.Books(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return encodeBooks(books), nil
}

// NewGRPCServer returns a gRPC server with the catalogue service registered and every call logged
func NewGRPCServer(catalogue Catalogue, logger *zap.SugaredLogger) *grpc.Server {
	s := grpc.NewServer(grpc.UnaryInterceptor(UnaryLogger(logger)))
	Register(s, NewServer(catalogue))
	return s
}

// UnaryLogger logs method, status code and latency of every unary call
func UnaryLogger(logger *zap.SugaredLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.Infow("rpc",
			"method", info.FullMethod,
			"code", status.Code(err).String(),
			"latency", time.Since(start),
		)
		return resp, err
	}
}
