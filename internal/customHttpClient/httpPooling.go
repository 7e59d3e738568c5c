package customHttpClient

import (
	"net/http"
	"sync"

	"github.com/akolanti/RagWeb/internal/config"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
)

var (
	once            sync.Once
	customTransport *http.Transport
)

// NewClient returns an http.Client backed by the one pooled transport shared by
// the llm clients, so connections to the same hosts are reused.
func NewClient() *http.Client {
	once.Do(func() {
		base := http.DefaultTransport.(*http.Transport).Clone()
		applyPooling(base)
		customTransport = base
	})
	return &http.Client{Transport: customTransport}
}

// NewAWSClient is the same pooling for the AWS SDK. It has to stay a BuildableClient
// so the SDK can still add AWS_CA_BUNDLE roots to its transport.
func NewAWSClient() *awshttp.BuildableClient {
	return awshttp.NewBuildableClient().WithTransportOptions(applyPooling)
}

func applyPooling(t *http.Transport) {
	t.MaxIdleConns = config.MaxIdleConns
	t.MaxIdleConnsPerHost = config.MaxIdleConnsPerHost
	t.IdleConnTimeout = config.IdleConnTimeout
}
