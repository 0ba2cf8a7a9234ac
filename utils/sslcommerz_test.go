package utils_test

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tuitionhub/config"
	"tuitionhub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signFields reproduces the gateway's verify_sign, with keys given in the
// sorted order they land in after store_passwd.
func signFields(storePass string, fields map[string]string, keys ...string) string {
	passSum := md5.Sum([]byte(storePass))
	signed := "store_passwd=" + hex.EncodeToString(passSum[:])
	for _, key := range keys {
		signed += "&" + key + "=" + fields[key]
	}
	sum := md5.Sum([]byte(signed))
	return hex.EncodeToString(sum[:])
}

func TestVerifyCallbackSignature(t *testing.T) {
	config.AppConfig = &config.Config{StorePass: "testpass"}

	fields := map[string]string{
		"tran_id":    "txn_42",
		"verify_key": "tran_id",
	}
	fields["verify_sign"] = signFields("testpass", fields, "tran_id")

	assert.True(t, utils.VerifyCallbackSignature(fields))
}

func TestVerifyCallbackSignatureUppercaseSign(t *testing.T) {
	config.AppConfig = &config.Config{StorePass: "testpass"}

	fields := map[string]string{
		"tran_id":    "txn_42",
		"verify_key": "tran_id",
	}
	fields["verify_sign"] = strings.ToUpper(signFields("testpass", fields, "tran_id"))

	assert.True(t, utils.VerifyCallbackSignature(fields))
}

func TestVerifyCallbackSignatureRejectsTampering(t *testing.T) {
	config.AppConfig = &config.Config{StorePass: "testpass"}

	fields := map[string]string{
		"tran_id":    "txn_42",
		"verify_key": "tran_id",
	}
	fields["verify_sign"] = signFields("testpass", fields, "tran_id")

	fields["tran_id"] = "txn_43"
	assert.False(t, utils.VerifyCallbackSignature(fields))
}

func TestVerifyCallbackSignatureMissingParts(t *testing.T) {
	config.AppConfig = &config.Config{StorePass: "testpass"}

	assert.False(t, utils.VerifyCallbackSignature(map[string]string{"verify_key": "tran_id"}))
	assert.False(t, utils.VerifyCallbackSignature(map[string]string{"verify_sign": "abc"}))
	assert.False(t, utils.VerifyCallbackSignature(map[string]string{}))
}

func TestCreateGatewaySessionInjectsCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "teststore", r.FormValue("store_id"))
		assert.Equal(t, "testpass", r.FormValue("store_passwd"))
		assert.Equal(t, "txn_7", r.FormValue("tran_id"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"SUCCESS","failedreason":"","sessionkey":"sess7","GatewayPageURL":"https://gw.test/pay/7"}`)
	}))
	defer server.Close()

	config.AppConfig = &config.Config{StoreID: "teststore", StorePass: "testpass", GatewayURL: server.URL}

	session, err := utils.CreateGatewaySession(map[string]string{"tran_id": "txn_7"})
	require.NoError(t, err)
	assert.Equal(t, "SUCCESS", session.Status)
	assert.Equal(t, "sess7", session.SessionKey)
	assert.Equal(t, "https://gw.test/pay/7", session.GatewayPageURL)
}

func TestCreateGatewaySessionFailedReason(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"FAILED","failedreason":"Store Credential Error","sessionkey":"","GatewayPageURL":""}`)
	}))
	defer server.Close()

	config.AppConfig = &config.Config{StoreID: "badstore", StorePass: "badpass", GatewayURL: server.URL}

	session, err := utils.CreateGatewaySession(map[string]string{"tran_id": "txn_7"})
	require.NoError(t, err)
	assert.Equal(t, "FAILED", session.Status)
	assert.Equal(t, "Store Credential Error", session.FailedReason)
}

func TestCreateGatewaySessionHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	config.AppConfig = &config.Config{StoreID: "teststore", StorePass: "testpass", GatewayURL: server.URL}

	_, err := utils.CreateGatewaySession(map[string]string{"tran_id": "txn_7"})
	assert.Error(t, err)
}
