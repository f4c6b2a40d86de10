package domain

// BuildReport — итог полной пересборки embedding-индекса.
type BuildReport struct {
	Indexed      int
	Skipped      []string // артикулы, пропущенные из-за ошибок препроцессинга/эмбеддинга
	ModelVersion string
	TookMs       int64
}

func NewBuildReport(indexed int, skipped []string, modelVersion string, tookMs int64) *BuildReport {
	return &BuildReport{
		Indexed:      indexed,
		Skipped:      skipped,
		ModelVersion: modelVersion,
		TookMs:       tookMs,
	}
}
