package catalogueservice

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/svera/booktable/internal/book"
)

// Client calls a remote book.Catalogue service. It can be used wherever a Catalogue is expected.
type Client struct {
	conn grpc.ClientConnInterface
}

func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Dial connects to the catalogue service listening on address, without TLS
func Dial(address string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, errors.Wrapf(err, "connecting to catalogue service at %s", address)
	}
	return conn, nil
}

// Book returns false if the service doesn't know id
func (c *Client) Book(ctx context.Context, id int64) (book.Book, bool, error) {
	out := new(structpb.Struct)
	err := c.conn.Invoke(ctx, getBookMethod, wrapperspb.Int64(id), out)
	if status.Code(err) == codes.NotFound {
		return book.Book{}, false, nil
	}
	if err != nil {
		return book.Book{}, false, errors.Wrapf(err, "getting book %d", id)
	}
	b, err := decodeBook(out)
	if err != nil {
		return book.Book{}, false, errors.Wrapf(err, "decoding book %d", id)
	}
	return b, true, nil
}

func (c *Client) Books(ctx context.Context) ([]book.Book, error) {
	out := new(structpb.ListValue)
	if err := c.conn.Invoke(ctx, listBooksMethod, &emptypb.Empty{}, out); err != nil {
		return nil, errors.Wrap(err, "listing books")
	}
	books, err := decodeBooks(out)
	if err != nil {
		return nil, errors.Wrap(err, "decoding books")
	}
	return books, nil
}
