package runlog

type implStore struct {
	path string
}

// New creates a Store backed by a single CSV file at path.
func New(path string) Store {
	return &implStore{path: path}
}
