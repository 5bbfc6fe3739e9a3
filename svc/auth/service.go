package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/dmitrymomot/credkit/pkg/logger"
	"github.com/dmitrymomot/credkit/pkg/password"
	"github.com/dmitrymomot/credkit/pkg/sanitizer"
	"github.com/dmitrymomot/credkit/pkg/validator"
)

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}

// TokenIssuer mints session tokens for a subject id.
type TokenIssuer interface {
	Issue(subjectID string) (string, error)
}

// rehashChecker is implemented by hashers that can tell outdated parameters.
type rehashChecker interface {
	NeedsRehash(encoded string) bool
}

// timingDummyPassword is hashed once and verified against when a login names
// an unknown email, so both paths spend one verification.
const timingDummyPassword = "credkit-timing-equalization"

const hookTimeout = 10 * time.Second

// Service runs the credential pipeline.
type Service struct {
	store  Store
	hasher PasswordHasher
	issuer TokenIssuer
	logger *slog.Logger
	now    func() time.Time

	hashSlots   *semaphore.Weighted
	hashTimeout time.Duration

	dummyMu   sync.Mutex
	dummyHash string

	afterRegister func(ctx context.Context, user *User) error
	afterLogin    func(ctx context.Context, user *User) error
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithHashConcurrency caps simultaneous hash and verify operations.
func WithHashConcurrency(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.hashSlots = semaphore.NewWeighted(int64(n))
		}
	}
}

// WithHashTimeout bounds how long a request waits for a hashing slot before
// failing with ErrOverloaded.
func WithHashTimeout(d time.Duration) ServiceOption {
	return func(s *Service) {
		if d > 0 {
			s.hashTimeout = d
		}
	}
}

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithAfterRegister sets a hook that runs asynchronously after a user is created.
func WithAfterRegister(fn func(context.Context, *User) error) ServiceOption {
	return func(s *Service) { s.afterRegister = fn }
}

// WithAfterLogin sets a hook that runs asynchronously after a successful login.
func WithAfterLogin(fn func(context.Context, *User) error) ServiceOption {
	return func(s *Service) { s.afterLogin = fn }
}

// NewService creates a Service. Hashing defaults to GOMAXPROCS concurrent
// operations with a 5s wait for a free slot.
func NewService(store Store, hasher PasswordHasher, issuer TokenIssuer, opts ...ServiceOption) *Service {
	s := &Service{
		store:       store,
		hasher:      hasher,
		issuer:      issuer,
		logger:      logger.Discard(),
		now:         time.Now,
		hashSlots:   semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0))),
		hashTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("auth"))
	return s
}

// Create validates input, hashes the password and persists a new active user.
func (s *Service) Create(ctx context.Context, in CreateInput) (*User, error) {
	email := sanitizer.NormalizeEmail(in.Email)
	name := sanitizer.NormalizeName(in.Name)

	rules := []validator.Rule{
		validator.RequiredString("email", email),
		validator.NonEmptyString("password", in.Password),
		validator.MaxLenString("password", in.Password, MaxPasswordLength),
		validator.MaxLenString("name", name, MaxNameLength),
	}
	if email != "" {
		rules = append(rules, validator.ValidEmail("email", email))
	}
	if err := validator.Apply(rules...); err != nil {
		return nil, errors.Join(ErrValidation, err)
	}

	hash, err := s.hash(ctx, in.Password)
	if err != nil {
		return nil, err
	}

	rec := &Record{
		User: User{
			Email:     email,
			Name:      name,
			Active:    true,
			Profile:   in.Profile,
			CreatedAt: s.now().UTC().Truncate(time.Millisecond),
		},
		PasswordHash: hash,
	}

	id, err := s.store.CreateUser(ctx, rec)
	if err != nil {
		if errors.Is(err, ErrDuplicateIdentity) {
			return nil, fmt.Errorf("%w: %s", ErrIdentityExists, email)
		}
		return nil, errors.Join(ErrStorageUnavailable, err)
	}
	rec.ID = id

	user := rec.ToUser()
	s.logger.InfoContext(ctx, "user created", logger.UserID(user.ID), logger.Event("user_created"))
	s.runHook(ctx, "after_register", s.afterRegister, user)

	return user, nil
}

// Register creates a user and returns it with a fresh session token.
func (s *Service) Register(ctx context.Context, in CreateInput) (*Session, error) {
	user, err := s.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.session(user)
}

// Login checks credentials and returns a session. Unknown email, wrong
// password and inactive account all yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, in LoginInput) (*Session, error) {
	email := sanitizer.NormalizeEmail(in.Email)
	if email == "" || in.Password == "" || len(in.Password) > MaxPasswordLength {
		return nil, ErrInvalidCredentials
	}

	rec, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, errors.Join(ErrStorageUnavailable, err)
		}
		dummy, err := s.timingHash(ctx)
		if err != nil {
			return nil, err
		}
		if _, err := s.verify(ctx, in.Password, dummy); errors.Is(err, ErrOverloaded) {
			return nil, err
		}
		s.logger.InfoContext(ctx, "login rejected",
			logger.Reason("unknown_email"),
			slog.String("email", sanitizer.MaskEmail(email)),
		)
		return nil, ErrInvalidCredentials
	}

	ok, err := s.verify(ctx, in.Password, rec.PasswordHash)
	if err != nil {
		if errors.Is(err, password.ErrCorruptHash) {
			s.logger.ErrorContext(ctx, "stored password hash is corrupt", logger.UserID(rec.ID), logger.Error(err))
			return nil, errors.Join(ErrCorruptCredential, err)
		}
		return nil, err
	}
	if !ok {
		s.logger.InfoContext(ctx, "login rejected", logger.Reason("wrong_password"), logger.UserID(rec.ID))
		return nil, ErrInvalidCredentials
	}
	if !rec.Active {
		s.logger.InfoContext(ctx, "login rejected", logger.Reason("inactive"), logger.UserID(rec.ID))
		return nil, ErrInvalidCredentials
	}

	if rc, ok := s.hasher.(rehashChecker); ok && rc.NeedsRehash(rec.PasswordHash) {
		s.logger.WarnContext(ctx, "password hash uses outdated parameters", logger.UserID(rec.ID))
	}

	user := rec.ToUser()
	session, err := s.session(user)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "user logged in", logger.UserID(user.ID), logger.Event("login"))
	s.runHook(ctx, "after_login", s.afterLogin, user)

	return session, nil
}

// CheckToken re-issues a token for a user already resolved by Gate.
func (s *Service) CheckToken(ctx context.Context, user *User) (*Session, error) {
	if user == nil || user.ID == "" {
		return nil, ErrUnauthenticated
	}
	return s.session(user)
}

// List returns every user in creation order.
func (s *Service) List(ctx context.Context) ([]*User, error) {
	recs, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, errors.Join(ErrStorageUnavailable, err)
	}
	users := make([]*User, 0, len(recs))
	for _, rec := range recs {
		users = append(users, rec.ToUser())
	}
	return users, nil
}

func (s *Service) session(user *User) (*Session, error) {
	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth: issue token: %w", err)
	}
	return &Session{User: user, Token: token}, nil
}

// acquire takes a hashing slot, waiting at most hashTimeout.
func (s *Service) acquire(ctx context.Context) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	waitCtx, cancel := context.WithTimeout(ctx, s.hashTimeout)
	defer cancel()

	if err := s.hashSlots.Acquire(waitCtx, 1); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errors.Join(ErrOverloaded, err)
	}
	return func() { s.hashSlots.Release(1) }, nil
}

func (s *Service) hash(ctx context.Context, plain string) (string, error) {
	release, err := s.acquire(ctx)
	if err != nil {
		return "", err
	}
	defer release()

	hash, err := s.hasher.Hash(plain)
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}
	return hash, nil
}

func (s *Service) verify(ctx context.Context, plain, encoded string) (bool, error) {
	release, err := s.acquire(ctx)
	if err != nil {
		return false, err
	}
	defer release()

	return s.hasher.Verify(plain, encoded)
}

// timingHash returns the cached dummy hash, computing it under a hashing slot
// on first use. A failed attempt is not cached.
func (s *Service) timingHash(ctx context.Context) (string, error) {
	s.dummyMu.Lock()
	defer s.dummyMu.Unlock()

	if s.dummyHash != "" {
		return s.dummyHash, nil
	}
	hash, err := s.hash(ctx, timingDummyPassword)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to prepare timing hash", logger.Error(err))
		return "", err
	}
	s.dummyHash = hash
	return hash, nil
}

func (s *Service) runHook(ctx context.Context, name string, hook func(context.Context, *User) error, user *User) {
	if hook == nil {
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("hook panicked", slog.String("hook", name), logger.UserID(user.ID), slog.Any("panic", r))
			}
		}()

		hookCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), hookTimeout)
		defer cancel()

		if err := hook(hookCtx, user); err != nil {
			s.logger.ErrorContext(hookCtx, "hook failed", slog.String("hook", name), logger.UserID(user.ID), logger.Error(err))
		}
	}()
}
