package toncenter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	chainport "github.com/tonarcade/casino-backend/internal/domain/port/chain"
	mockcore "github.com/tonarcade/casino-backend/mocks/port/core"
)

// validBOC is a minimal bag-of-cells payload (one empty cell).
const validBOC = "te6ccgEBAQEAAgAAAA=="

const recipient = "EQrecipient"

func newTestLogger() *mockcore.MockLogger {
	logger := new(mockcore.MockLogger)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func newTestTimeProvider() *mockcore.MockTimeProvider {
	tp := new(mockcore.MockTimeProvider)
	tp.On("WithTimeout", mock.Anything, mock.Anything).
		Return(context.Background(), context.CancelFunc(func() {})).Maybe()
	return tp
}

func newTestVerifier(endpoints ...string) *Verifier {
	return NewVerifier(endpoints, recipient, "", 5*time.Second, newTestTimeProvider(), newTestLogger())
}

func transactionsJSON(source, value string) string {
	return `{"ok":true,"result":[{"in_msg":{"source":"` + source + `","destination":"` + recipient + `","value":"` + value + `"}}]}`
}

func TestValidateBOC(t *testing.T) {
	t.Run("should accept a valid payload", func(t *testing.T) {
		assert.NoError(t, validateBOC(validBOC))
	})

	t.Run("should reject empty payload", func(t *testing.T) {
		assert.ErrorIs(t, validateBOC(""), chainport.ErrUnparseable)
	})

	t.Run("should reject non-base64 payload", func(t *testing.T) {
		assert.ErrorIs(t, validateBOC("not base64!!!"), chainport.ErrUnparseable)
	})

	t.Run("should reject payload without the bag-of-cells prefix", func(t *testing.T) {
		assert.ErrorIs(t, validateBOC("AAAAAAAAAAAAAAAA"), chainport.ErrUnparseable)
	})
}

func TestVerifier_VerifyTransaction(t *testing.T) {
	req := chainport.VerifyRequest{
		BOC:           validBOC,
		Amount:        10, // 10 TON = 1e10 nanotons
		SenderAddress: "EQsender",
	}

	t.Run("should verify a matching transaction", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, recipient, r.URL.Query().Get("address"))
			_, _ = w.Write([]byte(transactionsJSON("EQsender", "10000000000")))
		}))
		defer server.Close()

		err := newTestVerifier(server.URL).VerifyTransaction(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("should report amount mismatch for the right sender", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(transactionsJSON("EQsender", "5000000000")))
		}))
		defer server.Close()

		err := newTestVerifier(server.URL).VerifyTransaction(context.Background(), req)

		assert.ErrorIs(t, err, chainport.ErrAmountMismatch)
	})

	t.Run("should report wrong recipient when the sender paid elsewhere", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			body := `{"ok":true,"result":[{"in_msg":{"source":"EQsender","destination":"EQelsewhere","value":"10000000000"}}]}`
			_, _ = w.Write([]byte(body))
		}))
		defer server.Close()

		err := newTestVerifier(server.URL).VerifyTransaction(context.Background(), req)

		assert.ErrorIs(t, err, chainport.ErrWrongRecipient)
	})

	t.Run("should report not found when the sender never paid", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(transactionsJSON("EQstranger", "10000000000")))
		}))
		defer server.Close()

		err := newTestVerifier(server.URL).VerifyTransaction(context.Background(), req)

		assert.ErrorIs(t, err, chainport.ErrTransactionNotFound)
	})

	t.Run("should fall back to the next endpoint", func(t *testing.T) {
		broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer broken.Close()

		working := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(transactionsJSON("EQsender", "10000000000")))
		}))
		defer working.Close()

		err := newTestVerifier(broken.URL, working.URL).VerifyTransaction(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("should report network failure when all endpoints fail", func(t *testing.T) {
		broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer broken.Close()

		err := newTestVerifier(broken.URL).VerifyTransaction(context.Background(), req)

		assert.ErrorIs(t, err, chainport.ErrNetwork)
	})

	t.Run("should reject malformed payload before any network call", func(t *testing.T) {
		badReq := req
		badReq.BOC = "garbage"

		err := newTestVerifier("http://127.0.0.1:0").VerifyTransaction(context.Background(), badReq)

		assert.ErrorIs(t, err, chainport.ErrUnparseable)
	})
}
