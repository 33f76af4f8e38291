package bff_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/svera/booktable/internal/bff"
	"github.com/svera/booktable/internal/book"
	"github.com/svera/booktable/internal/catalogue"
	"github.com/svera/booktable/internal/catalogueservice"
	"github.com/svera/booktable/internal/graphql"
	"github.com/svera/booktable/internal/webserver/view"
)

// serve runs app on a free local port and returns its base URL
func serve(t *testing.T, app *fiber.App) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = app.Listener(ln)
	}()
	t.Cleanup(func() {
		_ = app.Shutdown()
	})
	return "http://" + ln.Addr().String()
}

func newBFF(t *testing.T, catalogue bff.Catalogue) string {
	t.Helper()
	app, err := bff.New(catalogue, zap.NewNop().Sugar())
	require.NoError(t, err)
	return serve(t, app)
}

func post(t *testing.T, url, body string) map[string]any {
	t.Helper()
	response, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer response.Body.Close()
	require.Equal(t, http.StatusOK, response.StatusCode)

	raw, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	return decoded
}

func getBookBody(t *testing.T, id int) string {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"query":     "query GetBook($id: Int!) { book(id: $id) { title } }",
		"variables": map[string]any{"id": id},
	})
	require.NoError(t, err)
	return string(body)
}

func TestBooksQuery(t *testing.T) {
	url := newBFF(t, book.Sample)

	for _, path := range []string{"/", "/graphql"} {
		t.Run(path, func(t *testing.T) {
			res := post(t, url+path, `{"query":"query ListBooks { books { id title author price } }","operationName":"ListBooks"}`)

			expected := map[string]any{
				"books": []any{
					map[string]any{"id": float64(1), "title": "The Awakening", "author": "Kate Chopin", "price": float64(1000)},
					map[string]any{"id": float64(2), "title": "City of Glass", "author": "Paul Auster", "price": float64(2000)},
				},
			}
			require.Nil(t, res["errors"])
			require.Equal(t, expected, res["data"])
		})
	}
}

func TestBookQuery(t *testing.T) {
	url := newBFF(t, book.Sample)

	var cases = []struct {
		name     string
		id       int
		expected any
	}{
		{"Existing book", 2, map[string]any{"title": "City of Glass"}},
		{"Unknown book", 3, nil},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			res := post(t, url+"/", getBookBody(t, tcase.id))
			require.Nil(t, res["errors"])
			require.Equal(t, map[string]any{"book": tcase.expected}, res["data"])
		})
	}
}

func TestMutationsAreRejected(t *testing.T) {
	url := newBFF(t, book.Sample)

	res := post(t, url+"/", `{"query":"mutation { deleteBook(id: 1) }"}`)
	require.Nil(t, res["data"])

	errs, ok := res["errors"].([]any)
	require.True(t, ok, "expected errors, got %#v", res)
	require.Len(t, errs, 1)
	message := errs[0].(map[string]any)["message"].(string)
	require.Contains(t, strings.ToLower(message), "mutation")
	require.NotContains(t, message, context.Canceled.Error())
}

func TestGraphiQL(t *testing.T) {
	url := newBFF(t, book.Sample)

	response, err := http.Get(url + "/")
	require.NoError(t, err)
	defer response.Body.Close()
	require.Equal(t, http.StatusOK, response.StatusCode)
	require.Contains(t, response.Header.Get("Content-Type"), "text/html")

	raw, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	require.True(t, bytes.Contains(raw, []byte("graphiql")), "expected GraphiQL page")
}

func TestFrontEndAgainstBFF(t *testing.T) {
	url := newBFF(t, book.Sample)

	client := graphql.NewHTTPClient(url+"/graphql", 5*time.Second)
	source := catalogue.NewSource(client)

	state := source.Watch(context.Background()).Wait(context.Background())
	panel := view.Books(state)

	require.Equal(t, view.PanelTable, panel.Kind, "unexpected state %#v", state)
	require.Equal(t, []book.Book(book.Sample), panel.Books)
	require.True(t, book.IsBookArray(state.(graphql.Fetched).Data))
}

func TestBFFBackedByCatalogueService(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	grpcServer := catalogueservice.NewGRPCServer(book.Sample, zap.NewNop().Sugar())
	go func() {
		_ = grpcServer.Serve(ln)
	}()
	t.Cleanup(grpcServer.Stop)

	conn, err := catalogueservice.Dial(ln.Addr().String())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	url := newBFF(t, catalogueservice.NewClient(conn))

	t.Run("Books come from the service", func(t *testing.T) {
		source := catalogue.NewSource(graphql.NewHTTPClient(url+"/graphql", 5*time.Second))
		panel := view.Books(source.Watch(context.Background()).Wait(context.Background()))
		require.Equal(t, view.PanelTable, panel.Kind)
		require.Equal(t, []book.Book(book.Sample), panel.Books)
	})

	t.Run("Unknown books are null", func(t *testing.T) {
		res := post(t, url+"/", getBookBody(t, 3))
		require.Nil(t, res["errors"])
		require.Equal(t, map[string]any{"book": nil}, res["data"])
	})
}

func TestCatalogueFailuresAreReported(t *testing.T) {
	url := newBFF(t, failingCatalogue{})

	client := graphql.NewHTTPClient(url+"/graphql", 5*time.Second)
	state := catalogue.NewSource(client).Watch(context.Background()).Wait(context.Background())

	panel := view.Books(state)
	require.Equal(t, view.PanelError, panel.Kind, "unexpected state %#v", state)
	require.Contains(t, panel.Message, "catalogue unavailable")
}

type failingCatalogue struct{}

func (failingCatalogue) Book(context.Context, int64) (book.Book, bool, error) {
	return book.Book{}, false, errUnavailable
}

func (failingCatalogue) Books(context.Context) ([]book.Book, error) {
	return nil, errUnavailable
}

var errUnavailable = errors.New("catalogue unavailable")
