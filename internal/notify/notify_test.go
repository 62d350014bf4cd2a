package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSend(t *testing.T) {
	t.Run("posts message with bearer key", func(t *testing.T) {
		var got sendRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"msg_1"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "secret", "Hub <hub@example.com>")
		err := client.Send(context.Background(), &Message{To: "tech@acme.test", Subject: "Hi", Text: "Hello"})

		require.NoError(t, err)
		assert.Equal(t, []string{"tech@acme.test"}, got.To)
		assert.Equal(t, "Hub <hub@example.com>", got.From)
		assert.Equal(t, "Hello", got.Text)
	})

	t.Run("provider error is returned", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"invalid recipient"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "secret", "hub@example.com")
		err := client.Send(context.Background(), &Message{To: "bad", Subject: "Hi"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid recipient")
	})
}

func TestDisabledMailer(t *testing.T) {
	err := DisabledMailer{}.Send(context.Background(), &Message{To: "a@b.c"})
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestWelcomeMessage(t *testing.T) {
	msg, err := WelcomeMessage(WelcomeData{
		FullName:          "Jane <Tech>",
		Email:             "jane@acme.test",
		CompanyName:       "Acme",
		LoginURL:          "https://hub.example.com/login",
		TemporaryPassword: "Tmp-123",
	})

	require.NoError(t, err)
	assert.Equal(t, "jane@acme.test", msg.To)
	assert.Equal(t, "Welcome to Maintenance Hub - Acme", msg.Subject)
	assert.Contains(t, msg.Text, "Temporary password: Tmp-123")
	assert.Contains(t, msg.HTML, "Jane &lt;Tech&gt;")

	msg, err = WelcomeMessage(WelcomeData{FullName: "Bob", Email: "bob@acme.test", LoginURL: "https://hub.example.com/login"})
	require.NoError(t, err)
	assert.NotContains(t, msg.Text, "Temporary password")
	assert.Equal(t, "Welcome to Maintenance Hub", msg.Subject)
}
