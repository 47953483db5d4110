package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/domain/chain"
)

// GormChainRepository persists planned chains using GORM. Chains are plain
// records, so storage is a direct field copy with segments flattened to
// JSON.
type GormChainRepository struct {
	db *gorm.DB
}

// NewGormChainRepository creates a new GORM chain repository
func NewGormChainRepository(db *gorm.DB) *GormChainRepository {
	return &GormChainRepository{db: db}
}

// Save upserts a chain for a planning tick.
func (r *GormChainRepository) Save(ctx context.Context, tick int, c *chain.Chain) error {
	model, err := r.entityToModel(tick, c)
	if err != nil {
		return fmt.Errorf("failed to convert chain to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save chain %s: %w", c.ID, result.Error)
	}
	return nil
}

// SaveAll upserts a set of chains for a planning tick.
func (r *GormChainRepository) SaveAll(ctx context.Context, tick int, chains []*chain.Chain) error {
	for _, c := range chains {
		if err := r.Save(ctx, tick, c); err != nil {
			return err
		}
	}
	return nil
}

// FindByID retrieves a chain by ID.
func (r *GormChainRepository) FindByID(ctx context.Context, id string) (*chain.Chain, error) {
	var model ChainModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("chain not found: %s", id)
		}
		return nil, fmt.Errorf("failed to find chain: %w", result.Error)
	}

	return r.modelToEntity(&model)
}

// FindByTick retrieves every chain stored for a planning tick.
func (r *GormChainRepository) FindByTick(ctx context.Context, tick int) ([]*chain.Chain, error) {
	var models []ChainModel
	result := r.db.WithContext(ctx).Where("tick = ?", tick).Order("profit DESC").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find chains for tick %d: %w", tick, result.Error)
	}
	return r.modelsToEntities(models)
}

// FindFunded retrieves every funded chain, most profitable first.
func (r *GormChainRepository) FindFunded(ctx context.Context) ([]*chain.Chain, error) {
	var models []ChainModel
	result := r.db.WithContext(ctx).Where("funded = ?", true).Order("profit DESC").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find funded chains: %w", result.Error)
	}
	return r.modelsToEntities(models)
}

// DeleteByTick removes every chain stored for a planning tick.
func (r *GormChainRepository) DeleteByTick(ctx context.Context, tick int) error {
	result := r.db.WithContext(ctx).Where("tick = ?", tick).Delete(&ChainModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete chains for tick %d: %w", tick, result.Error)
	}
	return nil
}

func (r *GormChainRepository) modelsToEntities(models []ChainModel) ([]*chain.Chain, error) {
	chains := make([]*chain.Chain, 0, len(models))
	for i := range models {
		entity, err := r.modelToEntity(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert chain %s: %w", models[i].ID, err)
		}
		chains = append(chains, entity)
	}
	return chains, nil
}

func (r *GormChainRepository) entityToModel(tick int, c *chain.Chain) (*ChainModel, error) {
	segments, err := json.Marshal(c.Segments)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal segments: %w", err)
	}
	return &ChainModel{
		ID:        c.ID,
		Tick:      tick,
		Segments:  string(segments),
		LeafCost:  c.LeafCost,
		TotalCost: c.TotalCost,
		MintValue: c.MintValue,
		Profit:    c.Profit,
		Funded:    c.Funded,
		Priority:  c.Priority,
		Age:       c.Age,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (r *GormChainRepository) modelToEntity(m *ChainModel) (*chain.Chain, error) {
	var segments []chain.Segment
	if err := json.Unmarshal([]byte(m.Segments), &segments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal segments: %w", err)
	}
	return &chain.Chain{
		ID:        m.ID,
		Segments:  segments,
		LeafCost:  m.LeafCost,
		TotalCost: m.TotalCost,
		MintValue: m.MintValue,
		Profit:    m.Profit,
		Funded:    m.Funded,
		Priority:  m.Priority,
		Age:       m.Age,
	}, nil
}
