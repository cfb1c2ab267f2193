package sink

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"
)

// webhookNotifier wraps a Sink and additionally POSTs every
// SendVendorError call as a small JSON body to an external URL. It is
// the one concrete instance of the otherwise out-of-scope "CI-vendor
// error reporting" contract (spec §1/§7): the core never constructs
// one itself, a caller wires it in only if it wants that behavior.
//
// Transport configuration mirrors the teacher's http_client asset
// (internal http.Client with a bounded timeout and idle-connection
// pooling) rather than introducing a new HTTP stack.
type webhookNotifier struct {
	Sink
	url    string
	client *http.Client
}

// NewWebhookNotifier returns a Sink that behaves like base, except
// SendVendorError additionally posts to url. Failures to reach url are
// swallowed: a broken notification channel must never fail a build.
func NewWebhookNotifier(base Sink, url string) Sink {
	return &webhookNotifier{
		Sink: base,
		url:  url,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (w *webhookNotifier) SendVendorError(msg string) {
	w.Sink.SendVendorError(msg)

	payload, err := json.Marshal(struct {
		Message string `json:"message"`
	}{Message: msg})
	if err != nil {
		return
	}

	req, err := http.NewRequest(http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return
	}
	defer resp.Body.Close()
}
