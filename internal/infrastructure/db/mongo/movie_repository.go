package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/movielobby/catalog-api/internal/core/domain"
)

const collectionMovies = "movies"

type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{col: db.Collection(collectionMovies)}
}

type mongoMovie struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Genre         string             `bson:"genre"`
	Rating        float64            `bson:"rating"`
	StreamingLink string             `bson:"streaming_link"`
}

func (m mongoMovie) toDomain() domain.Movie {
	return domain.Movie{
		ID:            m.ID.Hex(),
		Title:         m.Title,
		Genre:         m.Genre,
		Rating:        m.Rating,
		StreamingLink: m.StreamingLink,
	}
}

// Create inserts a new movie document and returns it with the assigned id.
func (r *MovieRepository) Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoMovie{
		Title:         movie.Title,
		Genre:         movie.Genre,
		Rating:        movie.Rating,
		StreamingLink: movie.StreamingLink,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	created := *movie
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// Find returns the movies in [skip, skip+limit) in the collection's
// natural order.
func (r *MovieRepository) Find(ctx context.Context, skip, limit int64) ([]domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSkip(skip).SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	return decodeMovies(ctx, cur)
}

// Search returns all movies whose title or genre contains query,
// case-insensitively. The query is regex-quoted so it matches as a plain
// substring, not as a user-supplied pattern.
func (r *MovieRepository) Search(ctx context.Context, query string) ([]domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	re := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"title": re},
		bson.M{"genre": re},
	}}

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	return decodeMovies(ctx, cur)
}

// Update applies the non-nil fields of update via $set and returns the
// post-update document.
func (r *MovieRepository) Update(ctx context.Context, id string, update domain.MovieUpdate) (*domain.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidMovieID
	}

	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Genre != nil {
		set["genre"] = *update.Genre
	}
	if update.Rating != nil {
		set["rating"] = *update.Rating
	}
	if update.StreamingLink != nil {
		set["streaming_link"] = *update.StreamingLink
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// An empty diff still has to report whether the record exists.
	if len(set) == 0 {
		var m mongoMovie
		if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, domain.ErrMovieNotFound
			}
			return nil, err
		}
		d := m.toDomain()
		return &d, nil
	}

	var m mongoMovie
	err = r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}

	d := m.toDomain()
	return &d, nil
}

// Delete removes the movie document with the given id.
func (r *MovieRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidMovieID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the search path.
func (r *MovieRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "genre", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func decodeMovies(ctx context.Context, cur *mongo.Cursor) ([]domain.Movie, error) {
	var docs []mongoMovie
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	movies := make([]domain.Movie, 0, len(docs))
	for _, d := range docs {
		movies = append(movies, d.toDomain())
	}
	return movies, nil
}
