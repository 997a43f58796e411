package domain

// Blurrer сервис размытия изображения
type Blurrer interface {
	Blur(pic *Picture, strategy Strategy) error
}

// WorkerPool интерфейс пула воркеров. Пул одноразовый: Submit* -> RunAndWait -> Destroy.
type WorkerPool interface {
	Submit(job func()) error
	RunAndWait() error
	Destroy()
}
