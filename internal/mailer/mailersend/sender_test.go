package mailersend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/et-services/quoterelay/internal/mailer"
)

func testEmail() *mailer.Email {
	return &mailer.Email{
		From:    mailer.Address{Email: "web@example.com", Name: "ET Services Website"},
		To:      []mailer.Address{{Email: "office@example.com", Name: "ET Services"}},
		Subject: "Handyman services quote request ET-000001 from Jane",
		Text:    "Postcode: E1",
	}
}

func TestSender_PostsPayloadWithBearerAuth(t *testing.T) {
	var (
		gotAuth    string
		gotType    string
		gotMethod  string
		gotPayload map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotMethod = r.Method
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotPayload)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	email := testEmail()
	email.Attachments = []mailer.Attachment{{
		Filename:    "leak.jpg",
		Content:     "aGVsbG8=",
		ContentType: "image/jpeg",
		Disposition: mailer.DispositionAttachment,
	}}

	err := New("mlsn.test", srv.URL).Send(context.Background(), email)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "Bearer mlsn.test", gotAuth)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, map[string]any{"email": "web@example.com", "name": "ET Services Website"}, gotPayload["from"])
	assert.Equal(t, []any{map[string]any{"email": "office@example.com", "name": "ET Services"}}, gotPayload["to"])
	assert.Equal(t, email.Subject, gotPayload["subject"])
	assert.Equal(t, "Postcode: E1", gotPayload["text"])
	assert.Equal(t, []any{map[string]any{
		"filename":     "leak.jpg",
		"content":      "aGVsbG8=",
		"disposition":  "attachment",
		"content_type": "image/jpeg",
	}}, gotPayload["attachments"])
}

func TestSender_OmitsEmptyAttachments(t *testing.T) {
	var gotPayload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotPayload)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	require.NoError(t, New("k", srv.URL).Send(context.Background(), testEmail()))
	_, ok := gotPayload["attachments"]
	assert.False(t, ok)
}

func TestSender_NonSuccessIsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"The from.email domain must be verified"}`))
	}))
	defer srv.Close()

	err := New("k", srv.URL).Send(context.Background(), testEmail())
	require.Error(t, err)
	assert.True(t, errors.Is(err, mailer.ErrSendFailed))

	var apiErr *mailer.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "domain must be verified")
}

func TestSender_TransportErrorIsNotSendFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := New("k", url).Send(context.Background(), testEmail())
	require.Error(t, err)
	assert.False(t, errors.Is(err, mailer.ErrSendFailed))
}

func TestSender_RejectsInvalidEmail(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	email := testEmail()
	email.To = nil

	err := New("k", srv.URL).Send(context.Background(), email)
	assert.ErrorIs(t, err, mailer.ErrNoRecipient)
	assert.False(t, called)
}

func TestNew_DefaultEndpoint(t *testing.T) {
	s := New("k", "")
	assert.Equal(t, DefaultEndpoint, s.endpoint)
	assert.Equal(t, "MailerSend", s.Name())
}
