package workers

// Workers aggregates background workers and starts them in order.
type Workers struct {
	workers []Worker
}

// NewWorkers bundles the given workers into one runnable aggregate.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
