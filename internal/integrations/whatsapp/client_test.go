package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	var got sendMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v15.0/123/messages", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.1"}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL + "/", APIVersion: "v15.0", PhoneNumberID: "123", Token: "secret"}, time.Second)

	err := c.Send(context.Background(), "51999888777", "hola")
	require.NoError(t, err)
	assert.Equal(t, "whatsapp", got.MessagingProduct)
	assert.Equal(t, "51999888777", got.To)
	assert.Equal(t, "text", got.Type)
	assert.Equal(t, "hola", got.Text.Body)
}

func TestSend_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid OAuth access token","code":190}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIVersion: "v15.0", PhoneNumberID: "123", Token: "bad"}, time.Second)

	err := c.Send(context.Background(), "51999888777", "hola")
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Contains(t, err.Error(), "Invalid OAuth access token")
}

func TestSend_Preconditions(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://unused"}, time.Second)
	assert.ErrorIs(t, c.Send(context.Background(), "51999888777", "hola"), ErrNotConfigured)

	c = NewClient(Config{BaseURL: "http://unused", PhoneNumberID: "1", Token: "t"}, time.Second)
	assert.ErrorIs(t, c.Send(context.Background(), "  ", "hola"), ErrEmptyRecipient)
}
