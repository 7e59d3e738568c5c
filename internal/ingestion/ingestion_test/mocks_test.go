package ingestion_test

import (
	"context"
	"io"
	"sync"

	"github.com/akolanti/RagWeb/internal/domain/ingestModel"
)

type putCall struct {
	Key         string
	ContentType string
	Body        []byte
}

// MockStorage implements ingestModel.ObjectStorage and records every Put.
type MockStorage struct {
	mu      sync.Mutex
	Puts    []putCall
	OnPut   func(key string) error
	OnCount func(prefix string, skip func(string) bool) (int, error)
}

func (m *MockStorage) Put(_ context.Context, key string, body io.Reader, _ int64, contentType string) (ingestModel.StorageLocation, error) {
	data, _ := io.ReadAll(body)
	m.mu.Lock()
	m.Puts = append(m.Puts, putCall{Key: key, ContentType: contentType, Body: data})
	m.mu.Unlock()

	if m.OnPut != nil {
		if err := m.OnPut(key); err != nil {
			return ingestModel.StorageLocation{}, err
		}
	}
	return ingestModel.StorageLocation{Bucket: "test-bucket", Key: key}, nil
}

func (m *MockStorage) CountObjects(_ context.Context, prefix string, skip func(string) bool) (int, error) {
	if m.OnCount != nil {
		return m.OnCount(prefix, skip)
	}
	return 0, nil
}

func (m *MockStorage) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Puts)
}

// MockKnowledgeBase implements ingestModel.KnowledgeBase
type MockKnowledgeBase struct {
	OnStart  func() (ingestModel.IngestionJob, error)
	OnGet    func(jobId string) (ingestModel.IngestionJob, error)
	OnLatest func() (ingestModel.IngestionJob, bool, error)
	Calls    int
}

func (m *MockKnowledgeBase) StartIngestionJob(_ context.Context) (ingestModel.IngestionJob, error) {
	m.Calls++
	if m.OnStart != nil {
		return m.OnStart()
	}
	return ingestModel.IngestionJob{Id: "job-1", Status: ingestModel.JobStatusStarting}, nil
}

func (m *MockKnowledgeBase) GetIngestionJob(_ context.Context, jobId string) (ingestModel.IngestionJob, error) {
	m.Calls++
	if m.OnGet != nil {
		return m.OnGet(jobId)
	}
	return ingestModel.IngestionJob{Id: jobId, Status: ingestModel.JobStatusComplete}, nil
}

func (m *MockKnowledgeBase) LatestIngestionJob(_ context.Context) (ingestModel.IngestionJob, bool, error) {
	m.Calls++
	if m.OnLatest != nil {
		return m.OnLatest()
	}
	return ingestModel.IngestionJob{}, false, nil
}

// MockPoller returns the scripted statuses in order, repeating the last one.
type MockPoller struct {
	Statuses []ingestModel.JobStatus
	Polls    int
}

func (m *MockPoller) PollStatus(_ context.Context, jobId string) (ingestModel.IngestionJob, error) {
	i := m.Polls
	if i >= len(m.Statuses) {
		i = len(m.Statuses) - 1
	}
	m.Polls++
	return ingestModel.IngestionJob{Id: jobId, Status: m.Statuses[i]}, nil
}
