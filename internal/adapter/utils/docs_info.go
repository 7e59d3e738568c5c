// @title           Knowledge Base RAG API
// @version         1.0
// @description     Uploads documents to S3, syncs them into a Bedrock knowledge base and answers questions over them.

// @contact.name    API Support
// @contact.email   ank.github@gmail.com

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8001
// @BasePath  /
// @schemes   http https
package utils

//local redis for shared rate limits
//docker run -p 6379:6379 -d redis

//swagger init
//swag init -g internal/adapter/utils/docs_info.go --parseDependency --parseInternal --dir ./ --output ./cmd/api/docs
