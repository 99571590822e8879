package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewServerAllowsSlowUploads(t *testing.T) {
	srv := newServer(":0", http.NotFoundHandler())

	assert.Equal(t, headerTimeout, srv.ReadHeaderTimeout)
	assert.Greater(t, srv.ReadTimeout, headerTimeout)
	assert.GreaterOrEqual(t, srv.WriteTimeout, srv.ReadTimeout)
}
