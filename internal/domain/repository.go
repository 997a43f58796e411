package domain

// PictureReader интерфейс для чтения изображений
type PictureReader interface {
	ReadPicture(path string) (*Picture, error)
}

// PictureWriter интерфейс для записи изображений
type PictureWriter interface {
	WritePicture(path string, pic *Picture) error
}

// ReportWriter интерфейс для записи результатов замеров
type ReportWriter interface {
	WriteReport(path string, results []*BenchmarkResult) error
}

// ConfigReader интерфейс для чтения конфигурации
type ConfigReader interface {
	ReadConfig(path string) (*Config, error)
}
