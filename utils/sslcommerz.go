package utils

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"tuitionhub/config"

	"github.com/go-resty/resty/v2"
)

const (
	sandboxSessionURL = "https://sandbox.sslcommerz.com/gwprocess/v4/api.php"
	liveSessionURL    = "https://securepay.sslcommerz.com/gwprocess/v4/api.php"
)

// GatewaySessionResponse is the SSLCommerz session-creation response. Only
// the fields this service acts on are mapped.
type GatewaySessionResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	SessionKey     string `json:"sessionkey"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

func sessionURL() string {
	if config.AppConfig.GatewayURL != "" {
		return config.AppConfig.GatewayURL
	}
	if config.AppConfig.Sandbox {
		return sandboxSessionURL
	}
	return liveSessionURL
}

// CreateGatewaySession posts a checkout-session request to SSLCommerz and
// returns the parsed response. Merchant credentials are injected here from
// config, never by callers.
func CreateGatewaySession(form map[string]string) (*GatewaySessionResponse, error) {
	form["store_id"] = config.AppConfig.StoreID
	form["store_passwd"] = config.AppConfig.StorePass

	client := resty.New()
	resp, err := client.R().
		SetFormData(form).
		Post(sessionURL())
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("gateway returned HTTP %d", resp.StatusCode())
	}

	var sessionResp GatewaySessionResponse
	if err := json.Unmarshal(resp.Body(), &sessionResp); err != nil {
		return nil, fmt.Errorf("invalid gateway response: %v", err)
	}

	return &sessionResp, nil
}

// VerifyCallbackSignature checks the verify_sign field SSLCommerz sends with
// its callbacks: md5 over the verify_key-listed fields plus the md5 of the
// store password, all joined as key=value pairs in sorted key order.
func VerifyCallbackSignature(fields map[string]string) bool {
	verifyKey := fields["verify_key"]
	verifySign := fields["verify_sign"]
	if verifyKey == "" || verifySign == "" {
		return false
	}

	passSum := md5.Sum([]byte(config.AppConfig.StorePass))
	signed := map[string]string{"store_passwd": hex.EncodeToString(passSum[:])}
	for _, key := range strings.Split(verifyKey, ",") {
		signed[key] = fields[key]
	}

	keys := make([]string, 0, len(signed))
	for key := range signed {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+signed[key])
	}

	sum := md5.Sum([]byte(strings.Join(pairs, "&")))
	return hex.EncodeToString(sum[:]) == strings.ToLower(verifySign)
}
