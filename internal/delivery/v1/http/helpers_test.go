package http

import (
	"net/http"
	"testing"

	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"no image", e.ErrNoImage, http.StatusBadRequest, e.ErrNoImage.Error()},
		{"decode failed", e.Wrap("SearchUseCase.Search", e.ErrDecodeFailed), http.StatusBadRequest, e.ErrDecodeFailed.Error()},
		{"invalid topK", e.ErrInvalidTopK, http.StatusBadRequest, e.ErrInvalidTopK.Error()},
		{"missing fields", e.ErrMissingFields, http.StatusBadRequest, e.ErrMissingFields.Error()},
		{"code required", e.ErrProductCodeRequired, http.StatusBadRequest, e.ErrProductCodeRequired.Error()},
		{"no products", e.ErrNoProducts, http.StatusBadRequest, e.ErrNoProducts.Error()},
		{"file too large", e.ErrFileTooLarge, http.StatusRequestEntityTooLarge, e.ErrFileTooLarge.Error()},
		{"model unavailable", e.Wrap("op", e.ErrModelUnavailable), http.StatusServiceUnavailable, e.ErrModelUnavailable.Error()},
		{"search timeout", e.ErrSearchTimeout, http.StatusGatewayTimeout, e.ErrSearchTimeout.Error()},
		{"integrity hidden from client", e.ErrDimensionMismatch, http.StatusInternalServerError, e.ErrInternalServerError.Error()},
		{"unknown", assert.AnError, http.StatusInternalServerError, e.ErrInternalServerError.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := ToHTTPResponse(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestParsePriceToCents(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{"integer rubles", "600", 60000, false},
		{"with kopecks", "599.99", 59999, false},
		{"single decimal", "10.5", 1050, false},
		{"zero", "0", 0, false},
		{"empty", "", 0, true},
		{"garbage", "abc", 0, true},
		{"negative", "-1", 0, true},
		{"three decimals", "10.999", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePriceToCents(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTopK(t *testing.T) {
	got, err := parseTopK("")
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = parseTopK("25")
	require.NoError(t, err)
	assert.Equal(t, 25, got)

	for _, raw := range []string{"0", "-3", "abc", "1.5"} {
		_, err := parseTopK(raw)
		assert.ErrorIs(t, err, e.ErrInvalidTopK, "top_k=%s", raw)
	}
}

func TestParseRemoveBackground(t *testing.T) {
	got, err := parseRemoveBackground("")
	require.NoError(t, err)
	assert.True(t, got, "absent value defaults to true")

	got, err = parseRemoveBackground("false")
	require.NoError(t, err)
	assert.False(t, got)

	_, err = parseRemoveBackground("maybe")
	assert.ErrorIs(t, err, e.ErrStatusBadRequest)
}

func TestParseCodes(t *testing.T) {
	assert.Equal(t, []string{"A-1", "B-2"}, parseCodes("A-1, B-2"))
	assert.Equal(t, []string{"A-1"}, parseCodes(",A-1,,"))
	assert.Empty(t, parseCodes(""))
}
