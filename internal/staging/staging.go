package staging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kunal2217/employee-registration/backend/internal/config"
	"github.com/kunal2217/employee-registration/backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

// key pattern: onboarding:{sessionID}:{step}
const keyPattern = "onboarding:%s:%s"

// Store holds not-yet-committed step payloads in redis, one key per
// session+step with an independent TTL. Payloads are staged as JSON text so
// decimal and date fields round-trip exactly.
type Store struct {
	cfg    *config.Config
	client *redis.Client
}

func NewStore(cfg *config.Config, client *redis.Client) *Store {
	return &Store{
		cfg:    cfg,
		client: client,
	}
}

func stepKey(sessionID string, step domain.Step) string {
	return fmt.Sprintf(keyPattern, sessionID, step)
}

func (s *Store) ttl() time.Duration {
	return time.Duration(s.cfg.Redis.StagingTTL) * time.Minute
}

// Save upserts the payload under the session+step key and restarts its
// expiration countdown. Overwriting a previously staged payload is silent.
func (s *Store) Save(ctx context.Context, sessionID string, step domain.Step, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, stepKey(sessionID, step), data, s.ttl()).Err()
}

// Load reads one staged payload into dst. An absent or expired key returns
// (false, nil).
func (s *Store) Load(ctx context.Context, sessionID string, step domain.Step, dst any) (bool, error) {
	data, err := s.client.Get(ctx, stepKey(sessionID, step)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, err
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}

	return true, nil
}

// LoadSession returns whatever subset of the three steps currently exists.
// Partial absence is not an error; missing steps come back as nil slots.
func (s *Store) LoadSession(ctx context.Context, sessionID string) (*domain.StagedSession, error) {
	staged := &domain.StagedSession{SessionID: sessionID}

	personal := &domain.PersonalInfo{}
	if ok, err := s.Load(ctx, sessionID, domain.StepPersonal, personal); err != nil {
		return nil, err
	} else if ok {
		staged.Personal = personal
	}

	education := &domain.EducationInfo{}
	if ok, err := s.Load(ctx, sessionID, domain.StepEducation, education); err != nil {
		return nil, err
	} else if ok {
		staged.Education = education
	}

	experience := &domain.ExperienceInfo{}
	if ok, err := s.Load(ctx, sessionID, domain.StepExperience, experience); err != nil {
		return nil, err
	} else if ok {
		staged.Experience = experience
	}

	return staged, nil
}

// Purge removes all step keys of a session. Absent keys are not an error.
func (s *Store) Purge(ctx context.Context, sessionID string) error {
	keys := make([]string, len(domain.Steps))
	for i, step := range domain.Steps {
		keys[i] = stepKey(sessionID, step)
	}

	return s.client.Del(ctx, keys...).Err()
}
