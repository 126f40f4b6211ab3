package keypair

import (
	"io"

	"github.com/sirupsen/logrus"

	"agentkey/internal/codec"
	"agentkey/internal/crypto"
	"agentkey/internal/domain"
)

// Service creates, loads and deletes the persisted key pair.
type Service struct {
	files     domain.KeyFileStore
	protector domain.Protector
	gen       domain.KeyGenerator
	log       logrus.FieldLogger
}

// New returns a Service over the given capabilities. A nil logger discards
// output.
func New(
	files domain.KeyFileStore,
	protector domain.Protector,
	gen domain.KeyGenerator,
	log logrus.FieldLogger,
) *Service {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Service{files: files, protector: protector, gen: gen, log: log}
}

// CreateOrLoad returns the persisted key pair, generating and saving a new
// one when no key file exists.
func (s *Service) CreateOrLoad() (domain.KeyPair, error) {
	exists, err := s.files.Exists()
	if err != nil {
		return domain.KeyPair{}, err
	}
	log := s.log.WithField("path", s.files.Path())
	if exists {
		log.Info("Found existing RSA key parameters file")
		return s.load()
	}

	log.Infof("Creating new RSA key using %d-bit key length", crypto.KeyBits)
	key, err := s.gen.GenerateKeyPair()
	if err != nil {
		return domain.KeyPair{}, err
	}
	m, err := crypto.MaterialFromKey(key)
	if err != nil {
		return domain.KeyPair{}, err
	}
	if err := s.save(m); err != nil {
		return domain.KeyPair{}, err
	}
	log.Info("Successfully saved RSA key parameters")
	return domain.KeyPair{Material: m, Key: key}, nil
}

// Load returns the persisted key pair. It fails with a
// *domain.KeyFileNotFoundError when no key file exists and never creates one.
func (s *Service) Load() (domain.KeyPair, error) {
	exists, err := s.files.Exists()
	if err != nil {
		return domain.KeyPair{}, err
	}
	if !exists {
		return domain.KeyPair{}, &domain.KeyFileNotFoundError{Path: s.files.Path()}
	}
	s.log.WithField("path", s.files.Path()).Info("Loading RSA key parameters from file")
	return s.load()
}

// Delete removes the key file. Deleting an absent file is a no-op.
func (s *Service) Delete() error {
	exists, err := s.files.Exists()
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	s.log.WithField("path", s.files.Path()).Info("Deleting RSA key parameters file")
	return s.files.Remove()
}

func (s *Service) load() (domain.KeyPair, error) {
	blob, err := s.files.Read()
	if err != nil {
		return domain.KeyPair{}, err
	}
	raw, err := s.protector.Unprotect(blob)
	if err != nil {
		return domain.KeyPair{}, domain.CryptoError(err)
	}
	defer crypto.Wipe(raw)

	m, err := codec.DecodeRecord(raw)
	if err != nil {
		return domain.KeyPair{}, err
	}
	key, err := crypto.KeyFromMaterial(m)
	if err != nil {
		return domain.KeyPair{}, domain.MalformedError(err)
	}
	return domain.KeyPair{Material: m, Key: key}, nil
}

func (s *Service) save(m domain.KeyMaterial) error {
	raw, err := codec.EncodeRecord(m)
	if err != nil {
		return err
	}
	defer crypto.Wipe(raw)

	blob, err := s.protector.Protect(raw)
	if err != nil {
		return err
	}
	if err := s.files.Write(blob); err != nil {
		return err
	}
	if err := s.files.Hide(); err != nil {
		s.log.WithField("path", s.files.Path()).WithError(err).Debug("Could not hide key file")
	}
	return nil
}

// Compile-time assertion that Service implements domain.KeyManager.
var _ domain.KeyManager = (*Service)(nil)
