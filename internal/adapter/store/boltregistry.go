package store

import (
	"fmt"

	"go.etcd.io/bbolt"
	"spamsift/internal/domain"
	"spamsift/internal/port"
)

var (
	bucketModels = []byte("models")
	bucketMeta   = []byte("meta")
	keyLatest    = []byte("latest")
)

// BoltRegistry keeps trained artifacts by name in a bbolt database. The
// stored bytes are the same canonical JSON the codec produces.
type BoltRegistry struct {
	db *bbolt.DB
}

func NewBoltRegistry(path string) (*BoltRegistry, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open model registry: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range [][]byte{bucketModels, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltRegistry{db: db}, nil
}

func (r *BoltRegistry) Put(name string, artifact *domain.Artifact) error {
	data, err := Encode(artifact)
	if err != nil {
		return err
	}
	return r.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketModels).Put([]byte(name), data); err != nil {
			return err
		}
		return tx.Bucket(bucketMeta).Put(keyLatest, []byte(name))
	})
}

func (r *BoltRegistry) Get(name string) (*domain.Artifact, error) {
	var data []byte
	err := r.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketModels).Get([]byte(name))
		if raw == nil {
			return fmt.Errorf("%w: model not found: %s", domain.ErrModel, name)
		}
		data = append([]byte(nil), raw...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

func (r *BoltRegistry) Latest() (string, *domain.Artifact, error) {
	var name string
	err := r.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketMeta).Get(keyLatest)
		if raw == nil {
			return fmt.Errorf("%w: registry holds no models", domain.ErrModel)
		}
		name = string(raw)
		return nil
	})
	if err != nil {
		return "", nil, err
	}
	artifact, err := r.Get(name)
	if err != nil {
		return "", nil, err
	}
	return name, artifact, nil
}

func (r *BoltRegistry) List() ([]port.ModelInfo, error) {
	var models []port.ModelInfo
	err := r.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketModels).ForEach(func(k, v []byte) error {
			artifact, err := Decode(v)
			if err != nil {
				return fmt.Errorf("registry entry %s: %w", k, err)
			}
			models = append(models, port.ModelInfo{
				Name:           string(k),
				TrainedAt:      artifact.TrainedAt,
				DatasetSize:    artifact.DatasetSize,
				VocabularySize: artifact.VocabularySize,
			})
			return nil
		})
	})
	return models, err
}

func (r *BoltRegistry) Close() error {
	return r.db.Close()
}
