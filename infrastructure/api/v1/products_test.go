package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clerkd/clerkd/domain/catalog"
)

func testTable(t *testing.T) *catalog.Table {
	t.Helper()

	table, err := catalog.NewTable([]catalog.Item{
		catalog.NewItem("p1", "MacBook Air M1", "laptops", 89900, []string{"apple", "portable"}),
		catalog.NewItem("p2", "ThinkPad X1 Carbon", "laptops", 129900, []string{"lenovo", "business"}),
		catalog.NewItem("a1", "USB-C Hub", "accessories", 3900, []string{"usb-c"}),
		catalog.NewItem("au1", "Noise-Cancelling Headphones", "audio", 24900, []string{"wireless"}),
	})
	require.NoError(t, err)
	return table
}

func productsServer(t *testing.T, defaultLimit int) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(NewProductsRouter(testTable(t), defaultLimit, nil).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func getItems(t *testing.T, url string) (int, []itemResponse) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, nil
	}
	var items []itemResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	return resp.StatusCode, items
}

func TestListReturnsAllInInsertionOrder(t *testing.T) {
	srv := productsServer(t, 0)

	status, items := getItems(t, srv.URL+"/")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, items, 4)
	require.Equal(t, "p1", items[0].ID)
	require.Equal(t, "au1", items[3].ID)
}

func TestListQueryIsCaseInsensitive(t *testing.T) {
	srv := productsServer(t, 0)

	status, items := getItems(t, srv.URL+"/?q=macbook")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, items, 1)
	require.Equal(t, "MacBook Air M1", items[0].Name)
}

func TestListCategoryIsExact(t *testing.T) {
	srv := productsServer(t, 0)

	status, items := getItems(t, srv.URL+"/?category=laptops")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, items, 2)

	status, items = getItems(t, srv.URL+"/?category=Laptops")
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, items)
}

func TestListPriceBoundsAreInclusive(t *testing.T) {
	srv := productsServer(t, 0)

	status, items := getItems(t, srv.URL+"/?priceMin=89900&priceMax=89900")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, items, 1)
	require.Equal(t, "p1", items[0].ID)
}

func TestListFiltersCompose(t *testing.T) {
	srv := productsServer(t, 0)

	status, items := getItems(t, srv.URL+"/?category=laptops&priceMax=100000")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, items, 1)
	require.Equal(t, "p1", items[0].ID)
}

func TestListBadPriceBoundIsRejected(t *testing.T) {
	srv := productsServer(t, 0)

	for _, target := range []string{"/?priceMin=cheap", "/?priceMax=9.99"} {
		resp, err := http.Get(srv.URL + target)
		require.NoError(t, err)
		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		resp.Body.Close()

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Contains(t, body["error"], "not a number")
	}
}

func TestListLimitTruncates(t *testing.T) {
	srv := productsServer(t, 0)

	status, items := getItems(t, srv.URL+"/?limit=2")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, items, 2)
	require.Equal(t, "p1", items[0].ID)
}

func TestListBadLimitFallsBackToDefault(t *testing.T) {
	srv := productsServer(t, 3)

	for _, target := range []string{"/?limit=abc", "/?limit=0", "/?limit=-5"} {
		status, items := getItems(t, srv.URL+target)
		require.Equal(t, http.StatusOK, status)
		require.Len(t, items, 3, "limit %q should fall back to the configured default", target)
	}
}

func TestListHugeLimitReturnsEverything(t *testing.T) {
	srv := productsServer(t, 0)

	status, items := getItems(t, srv.URL+"/?limit=1099511627776")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, items, 4)
}

func TestListEmptyResultIsEmptyArray(t *testing.T) {
	srv := productsServer(t, 0)

	resp, err := http.Get(srv.URL + "/?q=no-such-product")
	require.NoError(t, err)
	defer resp.Body.Close()

	body := make([]byte, 16)
	n, _ := resp.Body.Read(body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, "[]", string(body[:n]))
}

func TestGetReturnsItem(t *testing.T) {
	srv := productsServer(t, 0)

	resp, err := http.Get(srv.URL + "/p2")
	require.NoError(t, err)
	defer resp.Body.Close()

	var item itemResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&item))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ThinkPad X1 Carbon", item.Name)
	require.Equal(t, 129900, item.Price)
	require.Equal(t, []string{"lenovo", "business"}, item.Tags)
}

func TestGetUnknownIDIs404(t *testing.T) {
	srv := productsServer(t, 0)

	resp, err := http.Get(srv.URL + "/nope")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "Not found", body["error"])
}
