package notifier_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	config "github.com/Keoroanthony/go-orders/configs"
	"github.com/Keoroanthony/go-orders/internal/notifier"
)

func newTestClient(baseURL string) *notifier.SMSClient {
	return notifier.NewSMSClient(&config.Settings{
		SMSBaseURL:  baseURL,
		SMSAPIKey:   "test-api-key",
		SMSSenderID: "ServiceSMS",
	})
}

func TestSMSClientSend(t *testing.T) {

	t.Run("Posts the expected payload and returns the raw response", func(t *testing.T) {
		var gotPath, gotAuth string
		var gotBody map[string]interface{}

		gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"messages":[{"status":{"name":"PENDING_ACCEPTED"}}]}`))
		}))
		defer gateway.Close()

		client := newTestClient(gateway.URL)
		response, err := client.Send(context.Background(), "254711223344", "New order placed: Widget for $19.99")

		assert.NoError(t, err)
		assert.Equal(t, `{"messages":[{"status":{"name":"PENDING_ACCEPTED"}}]}`, response)
		assert.Equal(t, "/sms/2/text/advanced", gotPath)
		assert.Equal(t, "App test-api-key", gotAuth)

		messages := gotBody["messages"].([]interface{})
		assert.Len(t, messages, 1)
		message := messages[0].(map[string]interface{})
		assert.Equal(t, "ServiceSMS", message["from"])
		assert.Equal(t, "New order placed: Widget for $19.99", message["text"])
		destinations := message["destinations"].([]interface{})
		assert.Equal(t, "254711223344", destinations[0].(map[string]interface{})["to"])
	})

	t.Run("Returns the body and an error on a non-success status", func(t *testing.T) {
		gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"requestError":{"serviceException":{"text":"Invalid login details"}}}`))
		}))
		defer gateway.Close()

		client := newTestClient(gateway.URL)
		response, err := client.Send(context.Background(), "254711223344", "hello")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "non-success status: 401")
		assert.Contains(t, response, "Invalid login details")
	})

	t.Run("Returns an error when the gateway is unreachable", func(t *testing.T) {
		gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		gateway.Close()

		client := newTestClient(gateway.URL)
		_, err := client.Send(context.Background(), "254711223344", "hello")

		assert.Error(t, err)
	})
}
