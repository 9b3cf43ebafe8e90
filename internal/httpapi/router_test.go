package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinnku-nikaidou/shinnku-com/internal/appstate"
	"github.com/shinnku-nikaidou/shinnku-com/internal/proxyfwd"
	"github.com/shinnku-nikaidou/shinnku-com/internal/searchindex"
	"github.com/shinnku-nikaidou/shinnku-com/internal/tree"
	"github.com/shinnku-nikaidou/shinnku-com/internal/types"
	"github.com/shinnku-nikaidou/shinnku-com/internal/wikicache"
	"github.com/shinnku-nikaidou/shinnku-com/internal/workerpool"
)

func testServer(t *testing.T, upstream *httptest.Server) *Server {
	t.Helper()

	files := []types.FileInfo{
		{FilePath: "foo/bar.txt", UploadTimestamp: 1, FileSize: 100},
	}
	root := tree.Build(files)
	index := searchindex.Build(files)

	var proxyBase string
	if upstream != nil {
		proxyBase = upstream.URL
	} else {
		proxyBase = "http://127.0.0.1:1"
	}

	return &Server{
		State:     &appstate.State{Tree: root, SearchIndex: index},
		Pool:      workerpool.New(2),
		WikiCache: wikicache.New("127.0.0.1:1", "", 0, slog.Default()),
		Proxy:     proxyfwd.New(proxyBase, nil),
		Log:       slog.Default(),
	}
}

func TestHandleFiles_FolderListing(t *testing.T) {
	s := testServer(t, nil)
	mux := s.NewMux()

	req := httptest.NewRequest(http.MethodGet, "/files/foo", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body folderInodeDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "folder", body.Type)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "bar.txt", body.Data[0].Name)
}

func TestHandleFiles_FileHit(t *testing.T) {
	s := testServer(t, nil)
	mux := s.NewMux()

	req := httptest.NewRequest(http.MethodGet, "/files/foo/bar.txt", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body fileInodeDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "file", body.Type)
	assert.Equal(t, "bar.txt", body.Name)
	require.NotNil(t, body.Info)
	assert.Equal(t, uint64(100), body.Info.FileSize)
}

func TestHandleFiles_NotFound(t *testing.T) {
	s := testServer(t, nil)
	mux := s.NewMux()

	req := httptest.NewRequest(http.MethodGet, "/files/nope", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Message)
}

func TestHandleSearch_MissingQueryIsBadRequest(t *testing.T) {
	s := testServer(t, nil)
	mux := s.NewMux()

	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSearch_ReturnsMatches(t *testing.T) {
	s := testServer(t, nil)
	mux := s.NewMux()

	req := httptest.NewRequest(http.MethodGet, "/search?q=bar", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var items []searchItemDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "foo/bar.txt", items[0].ID)
}

func TestHandleCombinedSearch_MissingParams(t *testing.T) {
	s := testServer(t, nil)
	mux := s.NewMux()

	req := httptest.NewRequest(http.MethodGet, "/combinesearch?q1=foo", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleWikiPicture_MissingNameIsBadRequest(t *testing.T) {
	s := testServer(t, nil)
	mux := s.NewMux()

	req := httptest.NewRequest(http.MethodGet, "/wikisearchpicture", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleWikiPicture_CacheMissYieldsNullBg(t *testing.T) {
	s := testServer(t, nil)
	mux := s.NewMux()

	req := httptest.NewRequest(http.MethodGet, "/wikisearchpicture?name=unknown", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body wikiPictureDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Nil(t, body.Bg)
}

func TestHandleProxy_ForwardsToUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer upstream.Close()

	s := testServer(t, upstream)
	mux := s.NewMux()

	req := httptest.NewRequest(http.MethodGet, "/intro", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestHandleProxy_UpstreamUnreachableIsBadGateway(t *testing.T) {
	s := testServer(t, nil)
	mux := s.NewMux()

	req := httptest.NewRequest(http.MethodGet, "/findname", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
