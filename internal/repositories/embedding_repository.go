package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"voyago/internal/models/db_models"
	"voyago/pkg/utils"
)

type EmbeddingRepositoryInterface interface {
	UpsertEmbedding(embedding db_models.PackageEmbedding) error
	SearchByVector(vector pgvector.Vector) ([]db_models.PackageEmbedding, error)
	DeleteEmbedding(packageID string) error
}

type EmbeddingRepository struct {
	db *gorm.DB
}

func NewEmbeddingRepository(db *gorm.DB) EmbeddingRepositoryInterface {
	return &EmbeddingRepository{db: db}
}

func (r *EmbeddingRepository) UpsertEmbedding(embedding db_models.PackageEmbedding) error {
	if r.db == nil {
		return utils.ErrDatabaseDisabled
	}

	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "package_id"}},
		UpdateAll: true,
	}).Create(&embedding).Error
}

func (r *EmbeddingRepository) SearchByVector(vector pgvector.Vector) ([]db_models.PackageEmbedding, error) {
	if r.db == nil {
		return nil, utils.ErrDatabaseDisabled
	}

	var results []db_models.PackageEmbedding

	vecStr := vector.String()

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM package_embeddings
        WHERE (1 - (embedding <=> $1)) > 0.7  -- Only return results with >70% similarity
        ORDER BY embedding <=> $1  -- Cosine distance (closer to 0 is better)
        LIMIT 10
    `

	err := r.db.Raw(query, vecStr).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *EmbeddingRepository) DeleteEmbedding(packageID string) error {
	if r.db == nil {
		return utils.ErrDatabaseDisabled
	}
	return r.db.Where("package_id = ?", packageID).Delete(&db_models.PackageEmbedding{}).Error
}
