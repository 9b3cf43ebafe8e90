package proxyfwd

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinnku-nikaidou/shinnku-com/internal/apperr"
)

func TestForward_PreservesMethodPathQueryBody(t *testing.T) {
	var gotMethod, gotPath, gotQuery, gotBody string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("X-Upstream", "yes")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("ok"))
	}))
	defer upstream.Close()

	fwd := New(upstream.URL, nil)

	req := httptest.NewRequest(http.MethodPost, "/findname?name=foo", strings.NewReader("payload"))
	rec := httptest.NewRecorder()

	err := fwd.Forward(rec, req)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/findname", gotPath)
	assert.Equal(t, "name=foo", gotQuery)
	assert.Equal(t, "payload", gotBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "yes", rec.Header().Get("X-Upstream"))
	assert.Equal(t, "ok", rec.Body.String())
}

func TestForward_UpstreamUnreachableIsUpstreamError(t *testing.T) {
	fwd := New("http://127.0.0.1:1", nil) // nothing listens here
	req := httptest.NewRequest(http.MethodGet, "/intro", nil)
	rec := httptest.NewRecorder()

	err := fwd.Forward(rec, req)
	assert.Error(t, err)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.Upstream, appErr.Kind)
}
