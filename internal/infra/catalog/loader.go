package catalog

import (
	"context"
	"log/slog"
	"time"

	"healthplanner/config"
	"healthplanner/internal/domain/entity"
	"healthplanner/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

const defaultLoadTimeout = 30 * time.Second

// document is the YAML layout of a catalog file. A section that is absent
// keeps the built-in table.
type document struct {
	Foods     []*entity.FoodItem `yaml:"foods"`
	Exercises []*entity.Exercise `yaml:"exercises"`
}

// Parse decodes a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode catalog yaml")
	}

	foods := doc.Foods
	if len(foods) == 0 {
		foods = builtinFoods
	}
	exercises := doc.Exercises
	if len(exercises) == 0 {
		exercises = builtinExercises
	}

	return New(foods, exercises)
}

// Load reads key from the bucket at bucketURL and parses it. Any URL scheme
// registered with gocloud.dev/blob is accepted (file://, gs://, s3://).
func Load(ctx context.Context, bucketURL, key string) (*Catalog, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open catalog bucket %s", bucketURL)
	}
	defer bucket.Close()

	data, err := bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "read catalog %s", key)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", key)
	}

	return c, nil
}

// Params holds dependencies for the catalog provider, injected by Fx.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewProvider returns the configured catalog, falling back to the built-in
// tables when no source is set.
func NewProvider(params Params) (*Catalog, error) {
	cfg := params.Config.Catalog
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Using built-in reference catalog")

		return NewStatic(), nil
	}

	timeout := cfg.LoadTimeout
	if timeout <= 0 {
		timeout = defaultLoadTimeout
	}
	ctx, cancel := context.WithTimeout(params.Ctx, timeout)
	defer cancel()

	c, err := Load(ctx, cfg.BucketURL, cfg.Key)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Loaded reference catalog",
		slog.String("bucket", cfg.BucketURL),
		slog.String("key", cfg.Key),
		slog.Int("foods", len(c.foods)),
		slog.Int("exercises", len(c.exercises)),
	)

	return c, nil
}

// AsFoodCatalog exposes c as a repository.FoodCatalog.
func AsFoodCatalog(c *Catalog) repository.FoodCatalog { return c }

// AsExerciseCatalog exposes c as a repository.ExerciseCatalog.
func AsExerciseCatalog(c *Catalog) repository.ExerciseCatalog { return c }
