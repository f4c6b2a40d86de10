package grpc

import (
	"context"
	"testing"

	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/internal/proto"
	"github.com/DRSN-tech/visual-search/internal/usecase"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type recordingLogger struct {
	warns  int
	errors int
}

func (l *recordingLogger) Debugf(string, ...any)        {}
func (l *recordingLogger) Infof(string, ...any)         {}
func (l *recordingLogger) Warnf(string, ...any)         { l.warns++ }
func (l *recordingLogger) Errorf(error, string, ...any) { l.errors++ }

type fakeSearchUC struct {
	res *usecase.SearchRes
	err error
}

func (f *fakeSearchUC) Search(ctx context.Context, req *usecase.SearchReq) (*usecase.SearchRes, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.res, nil
}

func TestSearchByImage_MapsResults(t *testing.T) {
	uc := &fakeSearchUC{res: usecase.NewSearchRes([]domain.SimilarityResult{
		{ProductCode: "DRESS-1", Score: 0.97},
		{ProductCode: "SHIRT-2", Score: 0.90},
	}, 42)}

	svc := NewSearchService(uc, &recordingLogger{})

	res, err := svc.SearchByImage(context.Background(), &proto.SearchByImageRequest{Image: []byte{1}})
	require.NoError(t, err)

	require.Len(t, res.Results, 2)
	assert.Equal(t, "DRESS-1", res.Results[0].ProductCode)
	assert.InDelta(t, 0.97, float64(res.Results[0].Score), 1e-6)
	assert.Equal(t, int64(42), res.TookMs)
}

func TestSearchByImage_InputErrorsLoggedAsWarnings(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{name: "no image", err: e.ErrNoImage},
		{name: "invalid topK", err: e.ErrInvalidTopK},
		{name: "decode failed", err: e.ErrDecodeFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			log := &recordingLogger{}
			svc := NewSearchService(&fakeSearchUC{err: tc.err}, log)

			_, err := svc.SearchByImage(context.Background(), &proto.SearchByImageRequest{})
			require.Error(t, err)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))

			// клиентский ввод не повод для Error-записи
			assert.Equal(t, 1, log.warns)
			assert.Zero(t, log.errors)
		})
	}
}

func TestSearchByImage_ServiceFaultsLoggedAsErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{name: "model unavailable", err: e.ErrModelUnavailable, code: codes.Unavailable},
		{name: "search timeout", err: e.ErrSearchTimeout, code: codes.DeadlineExceeded},
		{name: "integrity fault", err: e.ErrDimensionMismatch, code: codes.Internal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			log := &recordingLogger{}
			svc := NewSearchService(&fakeSearchUC{err: tc.err}, log)

			_, err := svc.SearchByImage(context.Background(), &proto.SearchByImageRequest{Image: []byte{1}})
			require.Error(t, err)
			assert.Equal(t, tc.code, status.Code(err))

			assert.Zero(t, log.warns)
			assert.Equal(t, 1, log.errors)
		})
	}
}
