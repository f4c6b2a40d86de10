// Package preprocess приводит изображение-запрос к тензору, ожидаемому моделью DINOv2:
// декодирование, опциональное удаление фона, масштабирование, центральный кроп 224x224
// и нормализация по статистикам ImageNet. Вся обработка выполняется в памяти.
package preprocess

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/logger"
	"github.com/jimlawless/whereami"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	shorterSide = 256 // короткая сторона после масштабирования
	cropSize    = 224 // сторона центрального кропа
	channels    = 3
)

// Статистики ImageNet, с которыми обучалась модель.
var (
	meanRGB = [channels]float32{0.485, 0.456, 0.406}
	stdRGB  = [channels]float32{0.229, 0.224, 0.225}
)

// Preprocessor преобразует исходные байты изображения в domain.Tensor.
// Преобразование детерминировано: одни и те же байты дают одинаковый тензор.
type Preprocessor struct {
	log logger.Logger
}

func New(log logger.Logger) *Preprocessor {
	return &Preprocessor{log: log}
}

// Run выполняет полный конвейер препроцессинга.
// Нечитаемые байты дают e.ErrDecodeFailed. Удаление фона не бывает фатальным:
// при любой проблеме используется исходное изображение.
func (p *Preprocessor) Run(query *domain.QueryImage, removeBackground bool) (*domain.Tensor, error) {
	if query == nil || len(query.Data) == 0 {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrDecodeFailed)
	}

	src, format, err := image.Decode(bytes.NewReader(query.Data))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrDecodeFailed)
	}

	p.log.Debugf("preprocess: decoded %s %dx%d (correlation_id=%s)",
		format, src.Bounds().Dx(), src.Bounds().Dy(), query.CorrelationID)

	rgba := toRGBA(src)

	if removeBackground {
		cut, ok := removeBorderBackground(rgba)
		if ok {
			rgba = cut
		} else {
			p.log.Warnf("preprocess: background removal skipped, using original pixels (correlation_id=%s)",
				query.CorrelationID)
		}
	}

	scaled := scaleShorterSide(rgba, shorterSide)
	cropped := centerCrop(scaled, cropSize)

	return normalize(cropped), nil
}

func toRGBA(src image.Image) *image.RGBA {
	if r, ok := src.(*image.RGBA); ok {
		return r
	}

	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)

	return dst
}

// scaleShorterSide масштабирует изображение так, чтобы короткая сторона
// стала равна side, сохраняя пропорции.
func scaleShorterSide(src *image.RGBA, side int) *image.RGBA {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if w == side && h == side {
		return src
	}

	var newW, newH int
	if w < h {
		newW = side
		newH = (h*side + w/2) / w
	} else {
		newH = side
		newW = (w*side + h/2) / h
	}
	if newW < side {
		newW = side
	}
	if newH < side {
		newH = side
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	return dst
}

func centerCrop(src *image.RGBA, size int) *image.RGBA {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	x0 := (w - size) / 2
	y0 := (h - size) / 2

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), src, image.Pt(x0, y0), draw.Src)

	return dst
}

// normalize переводит пиксели в CHW float32 со статистиками ImageNet.
func normalize(src *image.RGBA) *domain.Tensor {
	size := src.Bounds().Dx()
	plane := size * size
	data := make([]float32, channels*plane)

	for y := 0; y < size; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+size*4]
		for x := 0; x < size; x++ {
			idx := y*size + x
			px := row[x*4 : x*4+4]
			for c := 0; c < channels; c++ {
				v := float32(px[c]) / 255.0
				data[c*plane+idx] = (v - meanRGB[c]) / stdRGB[c]
			}
		}
	}

	return domain.NewTensor(data, size, size, channels)
}
