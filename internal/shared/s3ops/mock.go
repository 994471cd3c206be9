package s3ops

import (
	"context"
	"net/http"
)

// Make sure *Mock satisfies Bucket interface.
var _ Bucket = (*Mock)(nil)

// Call records one operation made against a Mock.
type Call struct {
	Op   string
	Path string
	Data []byte
}

// Mock is a scripted Bucket for tests. Each operation answers with the
// configured status, or with Err when it is set.
type Mock struct {
	HeadStatus         int
	CreateStatus       int
	DeleteStatus       int
	PutStatus          int
	DeleteObjectStatus int
	GetStatus          int
	GetData            []byte
	Err                error

	Calls []Call
}

// NewMock returns a Mock answering every operation with its success status
// and a bucket that does not exist yet.
func NewMock() *Mock {
	return &Mock{
		HeadStatus:         http.StatusNotFound,
		CreateStatus:       http.StatusOK,
		DeleteStatus:       http.StatusNoContent,
		PutStatus:          http.StatusOK,
		DeleteObjectStatus: http.StatusNoContent,
		GetStatus:          http.StatusOK,
	}
}

func (m *Mock) record(op, path string, data []byte) {
	m.Calls = append(m.Calls, Call{Op: op, Path: path, Data: data})
}

// Ops lists the names of the recorded operations in call order.
func (m *Mock) Ops() []string {
	ops := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		ops[i] = c.Op
	}
	return ops
}

func (m *Mock) Head(ctx context.Context, path string) (int, error) {
	m.record("Head", path, nil)
	return m.HeadStatus, m.Err
}

func (m *Mock) Create(ctx context.Context) (int, error) {
	m.record("Create", "", nil)
	return m.CreateStatus, m.Err
}

func (m *Mock) Delete(ctx context.Context) (int, error) {
	m.record("Delete", "", nil)
	return m.DeleteStatus, m.Err
}

func (m *Mock) PutObject(ctx context.Context, path string, data []byte) (int, error) {
	buf := make([]byte, len(data))
	copy(buf, data)
	m.record("PutObject", path, buf)
	return m.PutStatus, m.Err
}

func (m *Mock) DeleteObject(ctx context.Context, path string) (int, error) {
	m.record("DeleteObject", path, nil)
	return m.DeleteObjectStatus, m.Err
}

func (m *Mock) GetObject(ctx context.Context, path string) ([]byte, int, error) {
	m.record("GetObject", path, nil)
	if m.Err != nil {
		return nil, 0, m.Err
	}
	return m.GetData, m.GetStatus, nil
}
