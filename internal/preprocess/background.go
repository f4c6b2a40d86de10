package preprocess

import "image"

// Пороговые значения матирования фона. Подобраны на предметной съемке
// каталога: однотонный фон, объект в центре кадра.
const (
	borderStep      = 4     // шаг выборки пикселей рамки
	matteThreshold  = 40.0  // евклидово расстояние в RGB до цвета фона
	minForeground   = 0.02  // доля переднего плана, ниже которой матирование считается неудачным
	maxForeground   = 0.98  // выше этой доли фон, видимо, не однотонный
	whiteBackground = 0xff
)

// removeBorderBackground оценивает цвет фона по рамке изображения, строит матте
// и компонует передний план на белом. Возвращает ok=false, если матте выглядит
// неправдоподобно, тогда вызывающий код оставляет исходные пиксели.
func removeBorderBackground(src *image.RGBA) (*image.RGBA, bool) {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if w < borderStep*2 || h < borderStep*2 {
		return nil, false
	}

	bgR, bgG, bgB, ok := estimateBorderColor(src)
	if !ok {
		return nil, false
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	foreground := 0

	for y := 0; y < h; y++ {
		srcRow := src.Pix[y*src.Stride:]
		dstRow := dst.Pix[y*dst.Stride:]
		for x := 0; x < w; x++ {
			o := x * 4
			r, g, b := float64(srcRow[o]), float64(srcRow[o+1]), float64(srcRow[o+2])

			dr, dg, db := r-bgR, g-bgG, b-bgB
			dist := dr*dr + dg*dg + db*db

			if dist > matteThreshold*matteThreshold {
				dstRow[o] = srcRow[o]
				dstRow[o+1] = srcRow[o+1]
				dstRow[o+2] = srcRow[o+2]
				foreground++
			} else {
				dstRow[o] = whiteBackground
				dstRow[o+1] = whiteBackground
				dstRow[o+2] = whiteBackground
			}
			dstRow[o+3] = 0xff
		}
	}

	ratio := float64(foreground) / float64(w*h)
	if ratio < minForeground || ratio > maxForeground {
		return nil, false
	}

	return dst, true
}

// estimateBorderColor усредняет цвет пикселей по периметру изображения.
func estimateBorderColor(src *image.RGBA) (r, g, b float64, ok bool) {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()

	var sumR, sumG, sumB float64
	count := 0

	sample := func(x, y int) {
		o := y*src.Stride + x*4
		sumR += float64(src.Pix[o])
		sumG += float64(src.Pix[o+1])
		sumB += float64(src.Pix[o+2])
		count++
	}

	for x := 0; x < w; x += borderStep {
		sample(x, 0)
		sample(x, h-1)
	}
	for y := borderStep; y < h-1; y += borderStep {
		sample(0, y)
		sample(w-1, y)
	}

	if count == 0 {
		return 0, 0, 0, false
	}

	return sumR / float64(count), sumG / float64(count), sumB / float64(count), true
}
