// Package profilestore adapts the hosted document store to the ProfileStore
// interface. Profile documents live in a single collection keyed by the
// provider-assigned account id.
package profilestore

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"beacon/config"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/service"
)

const fieldDisplayName = "displayName"

type firestoreStore struct {
	client     *firestore.Client
	collection string
	logger     *slog.Logger
}

// StoreParams holds dependencies for the profile store, injected by Fx.
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFirestoreStore creates a ProfileStore backed by Cloud Firestore.
func NewFirestoreStore(params StoreParams) (service.ProfileStore, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	client, err := firestore.NewClient(params.Ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firestore client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return client.Close()
		},
	})

	params.Logger.Info("Firestore profile store initialized",
		slog.String("project_id", cfg.ProjectID),
		slog.String("collection", cfg.ProfileCollection),
	)

	return &firestoreStore{
		client:     client,
		collection: cfg.ProfileCollection,
		logger:     params.Logger,
	}, nil
}

// Save writes the profile document keyed by the account id. The creation
// timestamp is assigned server-side through the struct tag.
func (s *firestoreStore) Save(ctx context.Context, profile *entity.Profile) error {
	_, err := s.client.Collection(s.collection).Doc(profile.AccountID).Set(ctx, profile)
	if err != nil {
		return s.mapStoreError(err, "failed to write profile document")
	}

	return nil
}

// FindByDisplayName resolves a display name by exact equality. When
// duplicates somehow exist the store's own order decides which one wins.
func (s *firestoreStore) FindByDisplayName(ctx context.Context, displayName string) (*entity.Profile, error) {
	iter := s.client.Collection(s.collection).
		Where(fieldDisplayName, "==", displayName).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err != nil {
		if errors.Is(err, iterator.Done) {
			return nil, errors.Wrap(service.ErrProfileNotFound, displayName)
		}

		return nil, s.mapStoreError(err, "failed to query profile by display name")
	}

	return s.decode(doc)
}

func (s *firestoreStore) FindByAccountID(ctx context.Context, accountID string) (*entity.Profile, error) {
	doc, err := s.client.Collection(s.collection).Doc(accountID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.Wrap(service.ErrProfileNotFound, accountID)
		}

		return nil, s.mapStoreError(err, "failed to get profile document")
	}

	return s.decode(doc)
}

func (s *firestoreStore) Delete(ctx context.Context, accountID string) error {
	// Firestore deletes are idempotent; a missing document is not an error.
	_, err := s.client.Collection(s.collection).Doc(accountID).Delete(ctx)
	if err != nil {
		return s.mapStoreError(err, "failed to delete profile document")
	}

	return nil
}

func (s *firestoreStore) decode(doc *firestore.DocumentSnapshot) (*entity.Profile, error) {
	var profile entity.Profile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile document")
	}
	profile.AccountID = doc.Ref.ID

	return &profile, nil
}

// mapStoreError separates transient store failures from everything else so
// "try again" never reads as "no such user".
func (s *firestoreStore) mapStoreError(err error, message string) error {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		s.logger.Warn("Transient Firestore failure", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrStoreUnavailable, message)
	}

	return errors.Wrap(err, message)
}

// Module provides the profile store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewFirestoreStore),
)
