package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/glowmart/shop-api/internal/core/domain"
)

const heroCollection = "hero"

// heroDocID is the fixed key of the one hero document.
const heroDocID = "main"

type HeroRepository struct {
	coll *mongo.Collection
}

func NewHeroRepository(db *mongo.Database) *HeroRepository {
	return &HeroRepository{coll: db.Collection(heroCollection)}
}

type mongoHero struct {
	ID       string `bson:"_id"`
	Title    string `bson:"title"`
	Subtitle string `bson:"subtitle"`
	LinkText string `bson:"link_text"`
	LinkURL  string `bson:"link_url"`
	ImageURL string `bson:"image_url,omitempty"`
}

func (mh mongoHero) toDomain() *domain.Hero {
	return &domain.Hero{
		Title:    mh.Title,
		Subtitle: mh.Subtitle,
		LinkText: mh.LinkText,
		LinkURL:  mh.LinkURL,
		ImageURL: mh.ImageURL,
	}
}

func (r *HeroRepository) Get(ctx context.Context) (*domain.Hero, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mh mongoHero
	if err := r.coll.FindOne(ctx, bson.M{"_id": heroDocID}).Decode(&mh); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHeroNotFound
		}
		return nil, fmt.Errorf("find hero: %w", err)
	}
	return mh.toDomain(), nil
}

func (r *HeroRepository) Save(ctx context.Context, h *domain.Hero) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoHero{
		ID:       heroDocID,
		Title:    h.Title,
		Subtitle: h.Subtitle,
		LinkText: h.LinkText,
		LinkURL:  h.LinkURL,
		ImageURL: h.ImageURL,
	}
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": heroDocID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save hero: %w", err)
	}
	return nil
}
