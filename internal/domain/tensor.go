package domain

// Tensor — нормализованное изображение в формате CHW float32,
// готовое к отправке в модель.
type Tensor struct {
	Data     []float32
	Width    int
	Height   int
	Channels int
}

func NewTensor(data []float32, width, height, channels int) *Tensor {
	return &Tensor{
		Data:     data,
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}
