package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lechworld/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/lechworld/internal/common"
	"github.com/dmitrijs2005/lechworld/internal/logging"
	"github.com/dmitrijs2005/lechworld/internal/obfuscate"
)

// CredentialService remembers one login in local storage.
//
// Contract:
//   - Remember: obfuscate and persist the pair under the configured key.
//   - Recall: load and decode it; common.ErrNoCredentials if there is none
//     or the stored blob does not decode to anything usable.
//   - Forget: remove it. Forgetting twice is fine.
type CredentialService interface {
	Remember(ctx context.Context, username string, password []byte) error
	Recall(ctx context.Context) (obfuscate.Credentials, error)
	Forget(ctx context.Context) error
}

type credentialService struct {
	repo   metadata.Repository
	codec  *obfuscate.Codec
	key    string
	logger logging.Logger
}

// NewCredentialService stores credentials in repo under key, obfuscated
// with codec.
func NewCredentialService(repo metadata.Repository, codec *obfuscate.Codec, key string, logger logging.Logger) CredentialService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &credentialService{repo: repo, codec: codec, key: key, logger: logger}
}

func (s *credentialService) Remember(ctx context.Context, username string, password []byte) error {
	blob := s.codec.EncodeCredentials(username, string(password))
	if err := s.repo.Set(ctx, s.key, []byte(blob)); err != nil {
		return fmt.Errorf("remember credentials: %w", err)
	}
	s.logger.Debug(ctx, "credentials remembered", "key", s.key)
	return nil
}

func (s *credentialService) Recall(ctx context.Context) (obfuscate.Credentials, error) {
	blob, err := s.repo.Get(ctx, s.key)
	if err != nil {
		return obfuscate.Credentials{}, fmt.Errorf("recall credentials: %w", err)
	}
	if blob == nil {
		return obfuscate.Credentials{}, common.ErrNoCredentials
	}

	cr := s.codec.DecodeCredentials(string(blob))
	if !cr.Available() {
		s.logger.Warn(ctx, "stored credentials unusable", "key", s.key)
		return obfuscate.Credentials{}, common.ErrNoCredentials
	}
	return cr, nil
}

func (s *credentialService) Forget(ctx context.Context) error {
	if err := s.repo.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("forget credentials: %w", err)
	}
	return nil
}
