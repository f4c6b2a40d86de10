package preprocess

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

// Предметное фото: серый фон, цветной прямоугольник в центре.
func productPhoto(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	fg := color.RGBA{R: 180, G: 30, B: 40, A: 255}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x > w/4 && x < 3*w/4 && y > h/4 && y < 3*h/4 {
				img.Set(x, y, fg)
			} else {
				img.Set(x, y, bg)
			}
		}
	}

	return img
}

func TestRun_TensorShape(t *testing.T) {
	p := New(nopLogger{})

	data := encodePNG(t, productPhoto(640, 480))
	tensor, err := p.Run(domain.NewQueryImage(data, "image/png", "t-1"), true)

	require.NoError(t, err)
	assert.Equal(t, 224, tensor.Width)
	assert.Equal(t, 224, tensor.Height)
	assert.Equal(t, 3, tensor.Channels)
	assert.Len(t, tensor.Data, 3*224*224)
}

func TestRun_Deterministic(t *testing.T) {
	p := New(nopLogger{})
	data := encodePNG(t, productPhoto(300, 500))

	first, err := p.Run(domain.NewQueryImage(data, "image/png", "a"), true)
	require.NoError(t, err)

	second, err := p.Run(domain.NewQueryImage(data, "image/png", "b"), true)
	require.NoError(t, err)

	assert.Equal(t, first.Data, second.Data)
}

func TestRun_DecodeErrors(t *testing.T) {
	p := New(nopLogger{})

	cases := []struct {
		name string
		data []byte
	}{
		{name: "empty buffer", data: nil},
		{name: "garbage bytes", data: []byte("definitely not an image")},
		{name: "truncated png", data: []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.Run(domain.NewQueryImage(tc.data, "image/png", "x"), true)
			assert.ErrorIs(t, err, e.ErrDecodeFailed)
		})
	}
}

func TestRun_SmallImageUpscaled(t *testing.T) {
	p := New(nopLogger{})

	data := encodePNG(t, productPhoto(64, 48))
	tensor, err := p.Run(domain.NewQueryImage(data, "image/png", "small"), false)

	require.NoError(t, err)
	assert.Len(t, tensor.Data, 3*224*224)
}

func TestNormalize_KnownPixel(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, cropSize, cropSize))
	for y := 0; y < cropSize; y++ {
		for x := 0; x < cropSize; x++ {
			img.Set(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	tensor := normalize(img)

	plane := cropSize * cropSize
	for c := 0; c < 3; c++ {
		want := (1.0 - meanRGB[c]) / stdRGB[c]
		assert.InDelta(t, want, tensor.Data[c*plane], 1e-5)
	}
}

func TestRemoveBorderBackground(t *testing.T) {
	t.Run("uniform image rejected", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 100, 100))
		for i := range img.Pix {
			img.Pix[i] = 128
		}

		_, ok := removeBorderBackground(img)
		assert.False(t, ok)
	})

	t.Run("object on plain background matted to white", func(t *testing.T) {
		img := toRGBA(productPhoto(100, 100))

		cut, ok := removeBorderBackground(img)
		require.True(t, ok)

		// угол — фон, должен стать белым
		assert.EqualValues(t, 255, cut.Pix[0])
		assert.EqualValues(t, 255, cut.Pix[1])
		assert.EqualValues(t, 255, cut.Pix[2])

		// центр — объект, должен сохраниться
		o := 50*cut.Stride + 50*4
		assert.EqualValues(t, 180, cut.Pix[o])
	})

	t.Run("tiny image rejected", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 4, 4))
		_, ok := removeBorderBackground(img)
		assert.False(t, ok)
	})
}
