package handlers_test

import (
	"context"
	"io"

	"github.com/akolanti/RagWeb/internal/domain/ingestModel"
	"github.com/akolanti/RagWeb/internal/domain/ragModel"
)

type uploadCall struct {
	Name     string
	Body     string
	Metadata map[string]any
}

// MockIngestion implements ingestion.Service
type MockIngestion struct {
	OnUpload   func(doc ingestModel.Document) (ingestModel.StorageLocation, error)
	OnStart    func() (ingestModel.IngestionJob, error)
	OnPoll     func(jobId string) (ingestModel.IngestionJob, error)
	OnLatest   func() (ingestModel.IngestionJob, bool, error)
	OnCount    func() (int, error)
	Uploads    []uploadCall
	SyncCalls  int
	PolledJobs []string
}

func (m *MockIngestion) Upload(_ context.Context, doc ingestModel.Document) (ingestModel.StorageLocation, error) {
	data, _ := io.ReadAll(doc.Body)
	m.Uploads = append(m.Uploads, uploadCall{Name: doc.Name, Body: string(data), Metadata: doc.Metadata})
	if m.OnUpload != nil {
		return m.OnUpload(doc)
	}
	return ingestModel.StorageLocation{Bucket: "test-bucket", Key: ingestModel.ObjectKey(doc.Name)}, nil
}

func (m *MockIngestion) StartSync(_ context.Context) (ingestModel.IngestionJob, error) {
	m.SyncCalls++
	if m.OnStart != nil {
		return m.OnStart()
	}
	return ingestModel.IngestionJob{Id: "job-1", Status: ingestModel.JobStatusStarting}, nil
}

func (m *MockIngestion) PollStatus(_ context.Context, jobId string) (ingestModel.IngestionJob, error) {
	m.PolledJobs = append(m.PolledJobs, jobId)
	if m.OnPoll != nil {
		return m.OnPoll(jobId)
	}
	return ingestModel.IngestionJob{Id: jobId, Status: ingestModel.JobStatusInProgress}, nil
}

func (m *MockIngestion) LatestStatus(_ context.Context) (ingestModel.IngestionJob, bool, error) {
	if m.OnLatest != nil {
		return m.OnLatest()
	}
	return ingestModel.IngestionJob{}, false, nil
}

func (m *MockIngestion) DocumentCount(_ context.Context) (int, error) {
	if m.OnCount != nil {
		return m.OnCount()
	}
	return 0, nil
}

// MockRAG implements rag.Service
type MockRAG struct {
	OnAnswer   func(question string, cfg ragModel.RequestConfig) (ragModel.Answer, error)
	Calls      int
	LastConfig ragModel.RequestConfig
}

func (m *MockRAG) Retrieve(_ context.Context, _ string, _ ragModel.RetrievalParams) ([]ragModel.RetrievedChunk, error) {
	return nil, nil
}

func (m *MockRAG) Generate(_ context.Context, _ string, chunks []ragModel.RetrievedChunk, cfg ragModel.RequestConfig) (ragModel.Answer, error) {
	return ragModel.Answer{Chunks: chunks, Backend: cfg.Backend()}, nil
}

func (m *MockRAG) Answer(_ context.Context, question string, cfg ragModel.RequestConfig) (ragModel.Answer, error) {
	m.Calls++
	m.LastConfig = cfg
	if m.OnAnswer != nil {
		return m.OnAnswer(question, cfg)
	}
	return ragModel.Answer{
		Text:    "mocked answer",
		Chunks:  []ragModel.RetrievedChunk{{Text: "ctx", Score: 0.8, SourceURI: "s3://test-bucket/documents/notes.txt"}},
		Backend: cfg.Backend(),
	}, nil
}
