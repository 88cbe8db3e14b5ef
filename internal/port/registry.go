package port

import "spamsift/internal/domain"

// ModelRegistry keeps trained artifacts by name for later listing and
// serving.
type ModelRegistry interface {
	Put(name string, artifact *domain.Artifact) error

	Get(name string) (*domain.Artifact, error)

	// Latest returns the most recently stored artifact and its name.
	Latest() (string, *domain.Artifact, error)

	List() ([]ModelInfo, error)

	Close() error
}

// ModelInfo is the listing view of a stored model.
type ModelInfo struct {
	Name           string
	TrainedAt      string
	DatasetSize    int
	VocabularySize int
}
