package awsClients

import (
	"context"
	"fmt"

	"github.com/akolanti/RagWeb/internal/customHttpClient"
	"github.com/akolanti/RagWeb/pkg/logger_i"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Clients are the long lived AWS handles. Every SDK client is safe for concurrent use.
type Clients struct {
	Config       aws.Config
	S3           *s3.Client
	Agent        *bedrockagent.Client
	AgentRuntime *bedrockagentruntime.Client
}

// New resolves credentials through the default AWS chain (env, shared config, instance role).
// Every call is a single attempt, the SDK retryer is replaced with a no-op one.
func New(ctx context.Context, region string) (*Clients, error) {
	logger := logger_i.NewLogger("aws_clients")

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithHTTPClient(customHttpClient.NewAWSClient()),
		awsconfig.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	logger.Info("AWS clients created", "region", region)
	return &Clients{
		Config:       cfg,
		S3:           s3.NewFromConfig(cfg),
		Agent:        bedrockagent.NewFromConfig(cfg),
		AgentRuntime: bedrockagentruntime.NewFromConfig(cfg),
	}, nil
}

// HasCredentials only resolves the credential chain locally. It does not call STS.
func (c *Clients) HasCredentials(ctx context.Context) bool {
	if c == nil || c.Config.Credentials == nil {
		return false
	}
	creds, err := c.Config.Credentials.Retrieve(ctx)
	return err == nil && creds.HasKeys()
}
