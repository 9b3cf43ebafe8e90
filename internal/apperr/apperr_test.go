package apperr

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, BadRequestf("missing %s", "q").Status())
	assert.Equal(t, http.StatusNotFound, NotFoundf("path %q", "/x").Status())
	assert.Equal(t, http.StatusBadGateway, Upstreamf("boom").Status())
	assert.Equal(t, http.StatusInternalServerError, Internalf("boom").Status())
}

func TestErrorMessage(t *testing.T) {
	err := NotFoundf("path %q not found", "/a/b")
	assert.Equal(t, `path "/a/b" not found`, err.Error())
}
